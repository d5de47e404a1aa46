package ports

import (
	"context"
	"time"
)

// Cache is the byte-level store behind cache-aside decorators such as the taxonomy cache.
// Callers treat any error as a miss and read through to Postgres.
type Cache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes value with ttl; ttl <= 0 keeps it until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
}
