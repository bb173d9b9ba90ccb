package memory

import (
	"context"
	"testing"
	"time"

	"land-catalog/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRepo_LatestOnly(t *testing.T) {
	repo := NewContactRepo()
	ctx := context.Background()

	_, err := repo.GetLatest(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	c := &domain.Contact{Phone: "1", SocialLinks: domain.SocialLinks{VK: &domain.SocialLink{Username: "a"}}}
	require.NoError(t, repo.Save(ctx, c))
	c.SocialLinks.VK.Username = "mutated"

	got, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", got.SocialLinks.VK.Username, "stored value must not alias caller memory")
}

func TestContactCache_TTL(t *testing.T) {
	cache := NewContactCache()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Set(ctx, &domain.Contact{Phone: "1"}, time.Hour))
	got, err = cache.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	now = now.Add(time.Hour)
	got, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "entry expires exactly at TTL")

	require.NoError(t, cache.Set(ctx, &domain.Contact{Phone: "2"}, time.Hour))
	require.NoError(t, cache.Delete(ctx))
	got, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
