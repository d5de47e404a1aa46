package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/devillabs/cms-api/internal/infrastructure/repositories"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRateLimitRedisRepository_SlidingWindow(t *testing.T) {
	mr, client := newMiniRedis(t)
	repo := repositories.NewRateLimitRedisRepository(client, "ratelimit:client")
	ctx := context.Background()
	t0 := time.UnixMilli(1714564800000)

	for i := 0; i < 3; i++ {
		st, err := repo.RecordIfBelow(ctx, "contact:1.2.3.4", 3, time.Minute, t0.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
		require.True(t, st.Allowed)
		require.Equal(t, i+1, st.Count)
	}

	st, err := repo.RecordIfBelow(ctx, "contact:1.2.3.4", 3, time.Minute, t0.Add(5*time.Second))
	require.NoError(t, err)
	require.False(t, st.Allowed)
	require.Equal(t, 3, st.Count)
	require.Equal(t, t0, st.Oldest)
	require.True(t, mr.Exists("ratelimit:client:contact:1.2.3.4"))

	st, err = repo.RecordIfBelow(ctx, "contact:1.2.3.4", 3, time.Minute, t0.Add(61*time.Second))
	require.NoError(t, err)
	require.True(t, st.Allowed)
	// entries at or before now-window are dropped, so t0 and t0+1s are gone
	require.Equal(t, 2, st.Count)
	require.Equal(t, t0.Add(2*time.Second), st.Oldest)

	// keys are independent
	st, err = repo.RecordIfBelow(ctx, "chat:1.2.3.4", 3, time.Minute, t0.Add(5*time.Second))
	require.NoError(t, err)
	require.True(t, st.Allowed)
	require.Equal(t, 1, st.Count)
}

func TestRateLimitRedisRepository_SameMillisecondCountsTwice(t *testing.T) {
	_, client := newMiniRedis(t)
	repo := repositories.NewRateLimitRedisRepository(client, "rl")
	now := time.UnixMilli(1714564800000)

	_, err := repo.RecordIfBelow(context.Background(), "k", 5, time.Minute, now)
	require.NoError(t, err)
	st, err := repo.RecordIfBelow(context.Background(), "k", 5, time.Minute, now)
	require.NoError(t, err)
	require.Equal(t, 2, st.Count)
}

func TestRateLimitRedisRepository_ErrorsWhenRedisIsDown(t *testing.T) {
	mr, client := newMiniRedis(t)
	repo := repositories.NewRateLimitRedisRepository(client, "rl")
	mr.Close()

	_, err := repo.RecordIfBelow(context.Background(), "k", 5, time.Minute, time.Now())
	require.Error(t, err)
}
