package usecase

import (
	"context"
	"errors"
	"fmt"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"time"
)

const DefaultContactCacheTTL = 24 * time.Hour

// GetContactUseCase - чтение контактов по схеме cache-aside.
type GetContactUseCase struct {
	repo  port.ContactRepositoryPort
	cache port.ContactCachePort
	ttl   time.Duration
}

func NewGetContactUseCase(repo port.ContactRepositoryPort, cache port.ContactCachePort, ttl time.Duration) *GetContactUseCase {
	if ttl <= 0 {
		ttl = DefaultContactCacheTTL
	}
	return &GetContactUseCase{repo: repo, cache: cache, ttl: ttl}
}

// Execute читает из кэша; при промахе читает хранилище и заполняет кэш.
// Недоступный кэш не роняет чтение, а пропускается. Отсутствие записи не кэшируется.
func (uc *GetContactUseCase) Execute(ctx context.Context) (*domain.Contact, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetContact"})

	cached, err := uc.cache.Get(ctx)
	switch {
	case err != nil:
		ucLogger.Warn("Cache read failed, falling back to store", port.Fields{"error": err.Error()})
	case cached != nil:
		ucLogger.Debug("Contact served from cache", nil)
		return cached, nil
	}

	contact, err := uc.repo.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ucLogger.Warn("No contact record in store", nil)
		} else {
			ucLogger.Error("Failed to read contact from store", err, nil)
		}
		return nil, err
	}

	if err := uc.cache.Set(ctx, contact, uc.ttl); err != nil {
		ucLogger.Warn("Failed to populate contact cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Debug("Contact served from store", nil)
	return contact, nil
}

// PutContactUseCase - запись контактов: сначала хранилище, затем удаление ключа кэша.
// Кэш из пути записи никогда не заполняется, его заполнит следующее чтение.
type PutContactUseCase struct {
	repo  port.ContactRepositoryPort
	cache port.ContactCachePort
	now   func() time.Time
}

func NewPutContactUseCase(repo port.ContactRepositoryPort, cache port.ContactCachePort) *PutContactUseCase {
	return &PutContactUseCase{repo: repo, cache: cache, now: time.Now}
}

func (uc *PutContactUseCase) Execute(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "PutContact"})

	if err := contact.Validate(); err != nil {
		ucLogger.Warn("Contact rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	contact.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Save(ctx, &contact); err != nil {
		ucLogger.Error("Failed to save contact", err, nil)
		return nil, err
	}

	if err := uc.cache.Delete(ctx); err != nil {
		// Запись уже в хранилище, но в кэше может остаться старое значение до истечения TTL
		ucLogger.Error("Contact saved but cache invalidation failed", err, nil)
		return &contact, fmt.Errorf("contact saved, cache invalidation failed: %w", errors.Join(domain.ErrCacheUnavailable, err))
	}

	ucLogger.Info("Contact updated and cache invalidated", nil)
	return &contact, nil
}
