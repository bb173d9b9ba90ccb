package usecases_port

import (
	"context"
	"land-catalog/internal/core/domain"
)

type CreateContactRequestUseCase interface {
	Execute(ctx context.Context, request domain.ContactRequest) (*domain.ContactRequest, error)
}
