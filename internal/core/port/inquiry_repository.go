package port

import (
	"context"
	"land-catalog/internal/core/domain"
)

type InquiryRepositoryPort interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
}
