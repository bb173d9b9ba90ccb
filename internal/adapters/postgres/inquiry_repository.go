package postgres

import (
	"context"
	"fmt"
	"land-catalog/internal/core/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository struct {
	pool *pgxpool.Pool
}

func NewInquiryRepository(pool *pgxpool.Pool) (*InquiryRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &InquiryRepository{pool: pool}, nil
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO inquiries (id, name, phone, message, source, plot_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		inquiry.ID, inquiry.Name, inquiry.Phone, inquiry.Message, inquiry.Source, inquiry.PlotID, inquiry.CreatedAt,
	)
	if err != nil {
		if foreignKeyViolation(err) {
			return domain.NewValidationError("invalid inquiry", "plot does not exist")
		}
		return storeError("failed to create inquiry", err)
	}
	return nil
}
