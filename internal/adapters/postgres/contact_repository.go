package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"land-catalog/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository хранит историю контактов; актуальна последняя запись.
type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) (*ContactRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ContactRepository{pool: pool}, nil
}

func (r *ContactRepository) GetLatest(ctx context.Context) (*domain.Contact, error) {
	var (
		c           domain.Contact
		workHours   []byte
		socialLinks []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT phone, email, address, work_hours, social_links, updated_at
		FROM contacts
		ORDER BY updated_at DESC, id DESC
		LIMIT 1`,
	).Scan(&c.Phone, &c.Email, &c.Address, &workHours, &socialLinks, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("contacts: %w", domain.ErrNotFound)
		}
		return nil, storeError("failed to get latest contact", err)
	}

	if len(workHours) > 0 {
		if err := json.Unmarshal(workHours, &c.WorkHours); err != nil {
			return nil, fmt.Errorf("failed to unmarshal work hours: %w", err)
		}
	}
	if len(socialLinks) > 0 {
		if err := json.Unmarshal(socialLinks, &c.SocialLinks); err != nil {
			return nil, fmt.Errorf("failed to unmarshal social links: %w", err)
		}
	}
	return &c, nil
}

func (r *ContactRepository) Save(ctx context.Context, contact *domain.Contact) error {
	var workHours []byte
	if contact.WorkHours != nil {
		b, err := json.Marshal(contact.WorkHours)
		if err != nil {
			return fmt.Errorf("failed to marshal work hours: %w", err)
		}
		workHours = b
	}
	socialLinks, err := json.Marshal(contact.SocialLinks)
	if err != nil {
		return fmt.Errorf("failed to marshal social links: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO contacts (phone, email, address, work_hours, social_links, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		contact.Phone, contact.Email, contact.Address, workHours, socialLinks, contact.UpdatedAt,
	)
	if err != nil {
		return storeError("failed to save contact", err)
	}
	return nil
}
