package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/devillabs/cms-api/internal/application/services"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/devillabs/cms-api/internal/infrastructure/repositories"
	"github.com/devillabs/cms-api/test/mocks"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newLimiter(clock *fakeClock) *services.RateLimiterService {
	repo := repositories.NewRateWindowMemoryRepository(nil)
	return services.NewRateLimiterService(repo, &services.RateLimiterConfig{Clock: clock.Now}, nil)
}

func TestRateLimiter_AdmitsUpToLimitThenRejects(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	rl := newLimiter(clock)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		require.True(t, rl.CheckAndRecord(ctx, "10.0.0.1", 20), "request %d", i+1)
		clock.Advance(100 * time.Millisecond)
	}
	require.False(t, rl.CheckAndRecord(ctx, "10.0.0.1", 20))
	// rejections do not extend the window
	require.False(t, rl.CheckAndRecord(ctx, "10.0.0.1", 20))

	// another client is unaffected
	require.True(t, rl.CheckAndRecord(ctx, "10.0.0.2", 20))

	clock.Advance(61 * time.Second)
	require.True(t, rl.CheckAndRecord(ctx, "10.0.0.1", 20))
}

func TestRateLimiter_WindowIsExactlyOneMinute(t *testing.T) {
	require.Equal(t, time.Minute, services.RateWindow)

	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	rl := newLimiter(clock)
	ctx := context.Background()

	require.True(t, rl.CheckAndRecord(ctx, "10.0.0.9", 1))
	clock.Advance(time.Minute - time.Millisecond)
	require.False(t, rl.CheckAndRecord(ctx, "10.0.0.9", 1))
	clock.Advance(time.Millisecond)
	require.True(t, rl.CheckAndRecord(ctx, "10.0.0.9", 1))
}

func TestRateLimiter_SlidesOneTimestampAtATime(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: start}
	rl := newLimiter(clock)
	ctx := context.Background()

	require.True(t, rl.CheckAndRecord(ctx, "k", 2))
	clock.Advance(30 * time.Second)
	require.True(t, rl.CheckAndRecord(ctx, "k", 2))
	require.False(t, rl.CheckAndRecord(ctx, "k", 2))

	// first timestamp expires, second is still inside the window
	clock.Advance(31 * time.Second)
	require.True(t, rl.CheckAndRecord(ctx, "k", 2))
	require.False(t, rl.CheckAndRecord(ctx, "k", 2))
}

func TestRateLimiter_AllowReportsHeaders(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: start}
	rl := newLimiter(clock)
	ctx := context.Background()

	d := rl.Allow(ctx, "k", 3)
	require.True(t, d.Allowed)
	require.Equal(t, 3, d.Limit)
	require.Equal(t, 2, d.Remaining)
	require.Equal(t, start.Add(time.Minute), d.Reset)

	clock.Advance(10 * time.Second)
	rl.Allow(ctx, "k", 3)
	rl.Allow(ctx, "k", 3)
	d = rl.Allow(ctx, "k", 3)
	require.False(t, d.Allowed)
	require.Equal(t, 0, d.Remaining)
	require.Equal(t, 50*time.Second, d.RetryAfter)
}

func TestRateLimiter_ConcurrentCallersNeverExceedLimit(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	rl := newLimiter(clock)

	var admitted int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.CheckAndRecord(context.Background(), "shared", 20) {
				atomic.AddInt64(&admitted, 1)
			}
		}()
	}
	wg.Wait()
	require.EqualValues(t, 20, admitted)
}

func TestRateLimiter_FailsOpenOnStorageError(t *testing.T) {
	repo := &mocks.RateWindowRepositoryMock{
		RecordIfBelowFn: func(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (ports.RateWindowState, error) {
			return ports.RateWindowState{}, errors.New("redis down")
		},
	}
	rl := services.NewRateLimiterService(repo, nil, nil)
	for i := 0; i < 5; i++ {
		require.True(t, rl.CheckAndRecord(context.Background(), "k", 1))
	}
}
