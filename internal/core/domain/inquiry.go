package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultInquiryName   = "Не указано"
	DefaultInquirySource = "Страница участка"
)

// Inquiry - заявка с карточки участка или формы обратной связи.
type Inquiry struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Message   string
	Source    string
	PlotID    *uuid.UUID
	CreatedAt time.Time
}

// ApplyDefaults заполняет необязательные поля значениями по умолчанию.
func (i *Inquiry) ApplyDefaults() {
	if strings.TrimSpace(i.Name) == "" {
		i.Name = DefaultInquiryName
	}
	if strings.TrimSpace(i.Source) == "" {
		i.Source = DefaultInquirySource
	}
}

func (i Inquiry) Validate() error {
	if strings.TrimSpace(i.Phone) == "" {
		return NewValidationError("invalid inquiry", "phone is required")
	}
	return nil
}
