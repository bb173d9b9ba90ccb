package cache

import (
	"context"
	"testing"
	"time"

	"land-catalog/internal/constants"
	"land-catalog/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisContactCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, err := NewRedisContactCache(client)
	require.NoError(t, err)
	return c, srv
}

func sampleContact() *domain.Contact {
	return &domain.Contact{
		Phone:     "79039991234",
		Email:     "info@altailands.ru",
		Address:   "г. Барнаул, ул. Ленина, 1",
		WorkHours: &domain.WorkHours{MondayFriday: "9:00 - 18:00", SaturdaySunday: "10:00 - 16:00"},
		SocialLinks: domain.SocialLinks{
			WhatsApp: &domain.SocialLink{Enabled: true, Username: "9039991234"},
		},
		UpdatedAt: time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestRedisContactCache_MissReturnsNil(t *testing.T) {
	c, _ := newTestCache(t)
	got, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisContactCache_SetGetDelete(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleContact(), 24*time.Hour))
	assert.True(t, srv.Exists(constants.CacheKeyContacts))
	assert.Equal(t, 24*time.Hour, srv.TTL(constants.CacheKeyContacts))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleContact(), got)

	require.NoError(t, c.Delete(ctx))
	got, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisContactCache_Expiry(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleContact(), time.Minute))
	srv.FastForward(2 * time.Minute)

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisContactCache_CorruptedEntry(t *testing.T) {
	c, srv := newTestCache(t)
	require.NoError(t, srv.Set(constants.CacheKeyContacts, "{not json"))

	_, err := c.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
}

func TestRedisContactCache_ServerDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })
	c, err := NewRedisContactCache(client)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
	assert.ErrorIs(t, c.Set(ctx, sampleContact(), time.Minute), domain.ErrCacheUnavailable)
	assert.ErrorIs(t, c.Delete(ctx), domain.ErrCacheUnavailable)
}
