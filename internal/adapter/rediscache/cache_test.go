package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/logger"
)

func setupStatsCache(t *testing.T) (*StatsCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client := &Client{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { _ = client.Close() })

	log := logger.InitLogger("test", logger.LevelError)
	return NewStatsCache(client, time.Minute, log), mr
}

func TestStatsCache_MissThenHit(t *testing.T) {
	cache, _ := setupStatsCache(t)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := models.StatsSnapshot{Total: 12, Todays: 3, InProgress: 2, Completed: 5}
	require.NoError(t, cache.Set(ctx, want))

	got, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStatsCache_Invalidate(t *testing.T) {
	cache, _ := setupStatsCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, models.StatsSnapshot{Total: 1}))
	require.NoError(t, cache.Invalidate(ctx))

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStatsCache_EntryExpires(t *testing.T) {
	cache, mr := setupStatsCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, models.StatsSnapshot{Total: 7}))

	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStatsCache_MalformedEntryBehavesLikeMiss(t *testing.T) {
	cache, mr := setupStatsCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("schedules:count", "not-json"))

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// the broken entry must be gone
	assert.False(t, mr.Exists("schedules:count"))
}
