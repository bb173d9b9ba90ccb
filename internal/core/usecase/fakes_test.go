package usecase

import (
	"context"
	"errors"
	"land-catalog/internal/core/domain"
	"sync"
	"time"
)

var errBoom = errors.New("boom")

// recordingNotifier запоминает опубликованные лиды.
type recordingNotifier struct {
	mu        sync.Mutex
	quiz      []domain.Issuance
	inquiries []domain.Inquiry
	requests  []domain.ContactRequest
	err       error
}

func (n *recordingNotifier) QuizSubmitted(ctx context.Context, issuance *domain.Issuance) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.quiz = append(n.quiz, *issuance)
	return n.err
}

func (n *recordingNotifier) InquiryCreated(ctx context.Context, inquiry *domain.Inquiry) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inquiries = append(n.inquiries, *inquiry)
	return n.err
}

func (n *recordingNotifier) ContactRequestCreated(ctx context.Context, request *domain.ContactRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.requests = append(n.requests, *request)
	return n.err
}

// unavailableLedger имитирует недоступную базу.
type unavailableLedger struct {
	findErr   error
	createErr error
}

func (l *unavailableLedger) FindByIdentity(ctx context.Context, identity domain.Identity) (*domain.Issuance, error) {
	if l.findErr != nil {
		return nil, l.findErr
	}
	return nil, domain.ErrNotFound
}

func (l *unavailableLedger) CreateWithPromo(ctx context.Context, identity domain.Identity, response *domain.QuizResponse, promo *domain.PromoCode) error {
	return l.createErr
}

// brokenCache - кэш, который отвечает ошибкой на каждую операцию.
type brokenCache struct {
	deletes int
}

func (c *brokenCache) Get(ctx context.Context) (*domain.Contact, error) {
	return nil, errors.Join(domain.ErrCacheUnavailable, errBoom)
}

func (c *brokenCache) Set(ctx context.Context, contact *domain.Contact, ttl time.Duration) error {
	return errors.Join(domain.ErrCacheUnavailable, errBoom)
}

func (c *brokenCache) Delete(ctx context.Context) error {
	c.deletes++
	return errors.Join(domain.ErrCacheUnavailable, errBoom)
}

// countingCache оборачивает кэш и считает записи.
type countingCache struct {
	inner interface {
		Get(ctx context.Context) (*domain.Contact, error)
		Set(ctx context.Context, contact *domain.Contact, ttl time.Duration) error
		Delete(ctx context.Context) error
	}
	sets    int
	lastTTL time.Duration
}

func (c *countingCache) Get(ctx context.Context) (*domain.Contact, error) { return c.inner.Get(ctx) }

func (c *countingCache) Set(ctx context.Context, contact *domain.Contact, ttl time.Duration) error {
	c.sets++
	c.lastTTL = ttl
	return c.inner.Set(ctx, contact, ttl)
}

func (c *countingCache) Delete(ctx context.Context) error { return c.inner.Delete(ctx) }

// countingContactRepo считает обращения к хранилищу.
type countingContactRepo struct {
	inner interface {
		GetLatest(ctx context.Context) (*domain.Contact, error)
		Save(ctx context.Context, contact *domain.Contact) error
	}
	reads int
}

func (r *countingContactRepo) GetLatest(ctx context.Context) (*domain.Contact, error) {
	r.reads++
	return r.inner.GetLatest(ctx)
}

func (r *countingContactRepo) Save(ctx context.Context, contact *domain.Contact) error {
	return r.inner.Save(ctx, contact)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
