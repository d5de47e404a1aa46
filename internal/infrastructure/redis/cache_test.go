package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	infraredis "github.com/devillabs/cms-api/internal/infrastructure/redis"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := infraredis.NewRedisCache(client, "cmscache")
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", []byte(`["a"]`), time.Minute))
	require.True(t, mr.Exists("cmscache:k"))
	require.Equal(t, time.Minute, mr.TTL("cmscache:k"))

	v, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `["a"]`, string(v))

	require.NoError(t, cache.Delete(ctx, "k"))
	require.NoError(t, cache.Delete(ctx, "k"))
	_, ok, _ = cache.Get(ctx, "k")
	require.False(t, ok)
}

func TestRedisCache_NegativeTTLMeansNoExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := infraredis.NewRedisCache(client, "")
	require.NoError(t, cache.Set(context.Background(), "k", []byte("v"), -time.Second))
	require.True(t, mr.Exists("k"))
	require.Zero(t, mr.TTL("k"))
}
