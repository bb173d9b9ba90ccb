package postgres

import (
	"context"
	"fmt"
	"land-catalog/internal/core/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRequestRepository struct {
	pool *pgxpool.Pool
}

func NewContactRequestRepository(pool *pgxpool.Pool) (*ContactRequestRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ContactRequestRepository{pool: pool}, nil
}

func (r *ContactRequestRepository) Create(ctx context.Context, request *domain.ContactRequest) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO contact_requests (id, name, phone, email, message, type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		request.ID, request.Name, request.Phone, request.Email, request.Message,
		request.Type, string(request.Status), request.CreatedAt,
	)
	if err != nil {
		return storeError("failed to create contact request", err)
	}
	return nil
}
