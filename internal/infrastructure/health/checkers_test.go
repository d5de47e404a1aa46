package health_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/devillabs/cms-api/internal/infrastructure/health"
	"github.com/devillabs/cms-api/test/mocks"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func TestRedisHealthChecker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()

	hc := health.NewRedisHealthChecker(client)
	require.Equal(t, "redis", hc.Name())
	require.NoError(t, hc.Check(context.Background()))

	mr.Close()
	require.Error(t, hc.Check(context.Background()))
}

func TestStorageHealthChecker(t *testing.T) {
	hc := health.NewStorageHealthChecker(mocks.NewObjectStoreFake())
	require.Equal(t, "storage", hc.Name())
	require.NoError(t, hc.Check(context.Background()))
}
