package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestRedisDashboardCache(t *testing.T) {
	server, client := newTestCache(t)
	cache := NewRedisDashboardCache(client)
	ctx := context.Background()

	var got payload
	hit, err := cache.Get(ctx, "dashboard:2024-09:none", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	want := payload{Month: "2024-09", Amount: decimal.RequireFromString("-12.34")}
	require.NoError(t, cache.Set(ctx, "dashboard:2024-09:none", want, time.Minute))
	require.NoError(t, cache.Set(ctx, "dashboard:2024-08:3", want, time.Minute))
	require.NoError(t, client.Set(ctx, "unrelated", "keep", 0).Err())

	hit, err = cache.Get(ctx, "dashboard:2024-09:none", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "2024-09", got.Month)
	assert.True(t, got.Amount.Equal(want.Amount))

	t.Run("entries expire", func(t *testing.T) {
		server.FastForward(2 * time.Minute)
		hit, err := cache.Get(ctx, "dashboard:2024-08:3", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("invalidate only drops dashboard entries", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "dashboard:2024-07:none", want, time.Minute))
		require.NoError(t, cache.Invalidate(ctx))

		hit, err := cache.Get(ctx, "dashboard:2024-07:none", &got)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, "keep", client.Get(ctx, "unrelated").Val())
	})
}

func TestNoopDashboardCache(t *testing.T) {
	cache := NewNoopDashboardCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", payload{}, time.Minute))
	hit, err := cache.Get(ctx, "k", &payload{})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, cache.Invalidate(ctx))
}
