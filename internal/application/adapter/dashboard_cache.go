package adapter

import (
	"context"
	"time"
)

// DashboardCache stores computed dashboard payloads.
// Implementations must treat a miss as (false, nil).
type DashboardCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Invalidate drops every cached dashboard entry.
	Invalidate(ctx context.Context) error
}

// Clock supplies the current time, so "today" can be pinned in tests.
type Clock interface {
	Now() time.Time
}
