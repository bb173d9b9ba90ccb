package rabbitmq

import (
	"time"

	"github.com/google/uuid"
)

// QuizSubmittedEventDTO - тело события quiz-submitted/v1
type QuizSubmittedEventDTO struct {
	ResponseID      uuid.UUID `json:"response_id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email,omitempty"`
	PromoCode       string    `json:"promo_code"`
	DiscountPercent int       `json:"discount_percent"`
	ExpiresAt       time.Time `json:"expires_at"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// InquiryCreatedEventDTO - тело события inquiry-created/v1
type InquiryCreatedEventDTO struct {
	InquiryID uuid.UUID  `json:"inquiry_id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Message   string     `json:"message,omitempty"`
	Source    string     `json:"source"`
	PlotID    *uuid.UUID `json:"plot_id"`
	CreatedAt time.Time  `json:"created_at"`
}

// ContactRequestCreatedEventDTO - тело события contact-request-created/v1
type ContactRequestCreatedEventDTO struct {
	RequestID uuid.UUID `json:"request_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
