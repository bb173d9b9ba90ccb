package usecases_port

import (
	"context"
	"land-catalog/internal/core/domain"
)

type GetContactUseCase interface {
	Execute(ctx context.Context) (*domain.Contact, error)
}

type PutContactUseCase interface {
	Execute(ctx context.Context, contact domain.Contact) (*domain.Contact, error)
}
