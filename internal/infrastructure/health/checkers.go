package health

import (
	"context"

	"github.com/devillabs/cms-api/internal/core/ports"
	infraDB "github.com/devillabs/cms-api/internal/infrastructure/db"
	"github.com/go-redis/redis/v8"
)

type dbHealthChecker struct{ db *infraDB.Database }

func (d *dbHealthChecker) Name() string                    { return "database" }
func (d *dbHealthChecker) Check(ctx context.Context) error { return d.db.Ping(ctx) }

type redisHealthChecker struct{ client redis.Cmdable }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// Pinger is anything that can probe its backing service, e.g. an object store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type storageHealthChecker struct{ store Pinger }

func (s *storageHealthChecker) Name() string                    { return "storage" }
func (s *storageHealthChecker) Check(ctx context.Context) error { return s.store.Ping(ctx) }

func NewDBHealthChecker(db *infraDB.Database) ports.HealthChecker { return &dbHealthChecker{db: db} }

func NewRedisHealthChecker(client redis.Cmdable) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}

// NewStorageHealthChecker probes the configured object store (Azure container or uploads dir).
func NewStorageHealthChecker(store Pinger) ports.HealthChecker {
	return &storageHealthChecker{store: store}
}
