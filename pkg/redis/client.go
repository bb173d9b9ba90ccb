package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Config хранит конфигурацию для подключения к Redis
type Config struct {
	URL string // "redis://:password@host:6379/0"
}

// NewClient создает клиента Redis и проверяет соединение
func NewClient(ctx context.Context, cfg Config) (*goredis.Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("REDIS_URL configuration is required")
	}

	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("unable to ping redis: %w", err)
	}
	return client, nil
}
