package port

import (
	"context"
	"land-catalog/internal/core/domain"
)

// LeadNotifierPort - уведомления отдела продаж о новых лидах.
type LeadNotifierPort interface {
	QuizSubmitted(ctx context.Context, issuance *domain.Issuance) error
	InquiryCreated(ctx context.Context, inquiry *domain.Inquiry) error
	ContactRequestCreated(ctx context.Context, request *domain.ContactRequest) error
}
