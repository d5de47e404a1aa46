package ports

import (
	"context"
	"time"
)

// RateWindowState is the outcome of one atomic read-prune-compare-append on a key's window.
type RateWindowState struct {
	Allowed bool
	// Count is the number of admitted timestamps in the window after the call.
	Count int
	// Oldest is the earliest timestamp still in the window; zero when the window is empty.
	Oldest time.Time
}

// RateWindowRepository stores per-key sliding windows of admitted request timestamps.
// RecordIfBelow must be atomic per key: it drops timestamps at or before now-window,
// and appends now only when the remaining count is strictly below limit.
type RateWindowRepository interface {
	RecordIfBelow(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (RateWindowState, error)
}

// RateDecision carries what the HTTP layer needs for X-RateLimit-* and Retry-After headers.
type RateDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	Reset      time.Time
	RetryAfter time.Duration
}

// RateLimiterService admits or rejects requests per client key. Safe for concurrent use.
type RateLimiterService interface {
	// CheckAndRecord reports whether a request for key may proceed under limit, recording it if so.
	CheckAndRecord(ctx context.Context, key string, limit int) bool
	// Allow is CheckAndRecord with header metadata.
	Allow(ctx context.Context, key string, limit int) RateDecision
}
