package usecases_port

import (
	"context"
	"land-catalog/internal/core/domain"
)

type CreateInquiryUseCase interface {
	Execute(ctx context.Context, inquiry domain.Inquiry) (*domain.Inquiry, error)
}
