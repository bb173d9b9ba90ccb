package memory

import (
	"context"
	"fmt"
	"land-catalog/internal/core/domain"
	"sync"
	"time"
)

// ContactRepo хранит только последнюю запись контактов.
type ContactRepo struct {
	mu      sync.RWMutex
	current *domain.Contact
}

func NewContactRepo() *ContactRepo {
	return &ContactRepo{}
}

func (r *ContactRepo) GetLatest(ctx context.Context) (*domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return nil, fmt.Errorf("contacts: %w", domain.ErrNotFound)
	}
	cp := cloneContact(*r.current)
	return &cp, nil
}

func (r *ContactRepo) Save(ctx context.Context, contact *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := cloneContact(*contact)
	r.current = &cp
	return nil
}

// ContactCache - кэш контактов в памяти процесса, используется без Redis.
type ContactCache struct {
	mu        sync.Mutex
	value     *domain.Contact
	expiresAt time.Time
	now       func() time.Time
}

func NewContactCache() *ContactCache {
	return &ContactCache{now: time.Now}
}

func (c *ContactCache) Get(ctx context.Context) (*domain.Contact, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.value == nil || !c.now().Before(c.expiresAt) {
		c.value = nil
		return nil, nil
	}
	cp := cloneContact(*c.value)
	return &cp, nil
}

func (c *ContactCache) Set(ctx context.Context, contact *domain.Contact, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := cloneContact(*contact)
	c.value = &cp
	c.expiresAt = c.now().Add(ttl)
	return nil
}

func (c *ContactCache) Delete(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = nil
	return nil
}

func cloneContact(c domain.Contact) domain.Contact {
	cp := c
	if c.WorkHours != nil {
		wh := *c.WorkHours
		cp.WorkHours = &wh
	}
	cp.SocialLinks = domain.SocialLinks{
		WhatsApp: cloneLink(c.SocialLinks.WhatsApp),
		Telegram: cloneLink(c.SocialLinks.Telegram),
		VK:       cloneLink(c.SocialLinks.VK),
	}
	return cp
}

func cloneLink(l *domain.SocialLink) *domain.SocialLink {
	if l == nil {
		return nil
	}
	cp := *l
	return &cp
}
