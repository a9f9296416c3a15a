// Package cache implements adapter.DashboardCache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budgeteur/backend/internal/application/adapter"
)

const (
	keyPrefix = "budgeteur:"
	scanBatch = 100
)

// redisDashboardCache stores dashboard payloads as JSON strings.
type redisDashboardCache struct {
	client *redis.Client
}

// NewRedisDashboardCache creates a dashboard cache backed by client.
func NewRedisDashboardCache(client *redis.Client) adapter.DashboardCache {
	return &redisDashboardCache{client: client}
}

// Get decodes the entry stored under key into dest.
func (c *redisDashboardCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key for ttl.
func (c *redisDashboardCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", key, err)
	}
	return nil
}

// Invalidate deletes every dashboard entry.
func (c *redisDashboardCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"dashboard:*", scanBatch).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache entries: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache entries: %w", err)
	}
	return nil
}

// noopDashboardCache is used when Redis is disabled.
type noopDashboardCache struct{}

// NewNoopDashboardCache returns a cache that never stores anything.
func NewNoopDashboardCache() adapter.DashboardCache {
	return noopDashboardCache{}
}

func (noopDashboardCache) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (noopDashboardCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (noopDashboardCache) Invalidate(context.Context) error {
	return nil
}
