package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"land-catalog/internal/constants"
	"land-catalog/internal/core/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

// cachedContact - формат записи в Redis. Совпадает с JSON, который отдает API.
type cachedContact struct {
	Phone       string             `json:"phone"`
	Email       string             `json:"email"`
	Address     string             `json:"address"`
	WorkHours   *domain.WorkHours  `json:"work_hours,omitempty"`
	SocialLinks domain.SocialLinks `json:"social_links"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// RedisContactCache реализует ContactCachePort поверх Redis.
type RedisContactCache struct {
	client redis.UniversalClient
	key    string
}

func NewRedisContactCache(client redis.UniversalClient) (*RedisContactCache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	return &RedisContactCache{client: client, key: constants.CacheKeyContacts}, nil
}

// Get возвращает (nil, nil) при промахе. Поврежденная запись считается ошибкой кэша.
func (c *RedisContactCache) Get(ctx context.Context) (*domain.Contact, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", c.key, errors.Join(domain.ErrCacheUnavailable, err))
	}

	var cc cachedContact
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.key, errors.Join(domain.ErrCacheUnavailable, err))
	}
	return &domain.Contact{
		Phone:       cc.Phone,
		Email:       cc.Email,
		Address:     cc.Address,
		WorkHours:   cc.WorkHours,
		SocialLinks: cc.SocialLinks,
		UpdatedAt:   cc.UpdatedAt,
	}, nil
}

func (c *RedisContactCache) Set(ctx context.Context, contact *domain.Contact, ttl time.Duration) error {
	raw, err := json.Marshal(cachedContact{
		Phone:       contact.Phone,
		Email:       contact.Email,
		Address:     contact.Address,
		WorkHours:   contact.WorkHours,
		SocialLinks: contact.SocialLinks,
		UpdatedAt:   contact.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode contact: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.key, errors.Join(domain.ErrCacheUnavailable, err))
	}
	return nil
}

func (c *RedisContactCache) Delete(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", c.key, errors.Join(domain.ErrCacheUnavailable, err))
	}
	return nil
}
