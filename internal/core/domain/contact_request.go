package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultContactRequestType - тип заявки с формы на странице контактов.
const DefaultContactRequestType = "contact_form"

// ContactRequestStatus - статус обработки заявки менеджером.
type ContactRequestStatus string

const ContactRequestStatusNew ContactRequestStatus = "new"

// ContactRequest - заявка с формы обратной связи: в отличие от Inquiry все поля обязательны.
type ContactRequest struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     string
	Message   string
	Type      string
	Status    ContactRequestStatus
	CreatedAt time.Time
}

// Normalize обрезает пробелы и подставляет тип по умолчанию.
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
	r.Type = strings.TrimSpace(r.Type)
	if r.Type == "" {
		r.Type = DefaultContactRequestType
	}
}

func (r ContactRequest) Validate() error {
	var details []string
	if strings.TrimSpace(r.Name) == "" {
		details = append(details, "name is required")
	}
	if strings.TrimSpace(r.Phone) == "" {
		details = append(details, "phone is required")
	} else if NormalizePhone(r.Phone) == "" {
		details = append(details, "phone must contain digits")
	}
	if strings.TrimSpace(r.Email) == "" {
		details = append(details, "email is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		details = append(details, "message is required")
	}
	if len(details) > 0 {
		return NewValidationError("invalid contact request", details...)
	}
	return nil
}
