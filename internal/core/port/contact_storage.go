package port

import (
	"context"
	"land-catalog/internal/core/domain"
	"time"
)

// ContactRepositoryPort - долговременное хранилище контактов.
type ContactRepositoryPort interface {
	// GetLatest возвращает последнюю обновленную запись или domain.ErrNotFound.
	GetLatest(ctx context.Context) (*domain.Contact, error)
	Save(ctx context.Context, contact *domain.Contact) error
}

// ContactCachePort - кэш контактов. Сериализация - забота адаптера.
type ContactCachePort interface {
	// Get возвращает (nil, nil) при промахе.
	Get(ctx context.Context) (*domain.Contact, error)
	Set(ctx context.Context, contact *domain.Contact, ttl time.Duration) error
	Delete(ctx context.Context) error
}
