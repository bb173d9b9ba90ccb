package port

import (
	"context"
	"land-catalog/internal/core/domain"
)

type ContactRequestRepositoryPort interface {
	Create(ctx context.Context, request *domain.ContactRequest) error
}
