package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// RateWindowMemoryRepository keeps per-key admitted timestamps in process memory.
// A single mutex guards the map so read-prune-compare-append is atomic per key.
type RateWindowMemoryRepository struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	logger  *logrus.Logger
}

func NewRateWindowMemoryRepository(logger *logrus.Logger) *RateWindowMemoryRepository {
	return &RateWindowMemoryRepository{windows: make(map[string][]time.Time), logger: logger}
}

// RecordIfBelow implements ports.RateWindowRepository.
func (r *RateWindowMemoryRepository) RecordIfBelow(_ context.Context, key string, limit int, window time.Duration, now time.Time) (ports.RateWindowState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := prune(r.windows[key], now.Add(-window))
	state := ports.RateWindowState{Count: len(ts)}
	if len(ts) < limit {
		ts = append(ts, now)
		state.Allowed = true
		state.Count = len(ts)
	}
	if len(ts) == 0 {
		delete(r.windows, key)
	} else {
		r.windows[key] = ts
		state.Oldest = ts[0]
	}
	return state, nil
}

// Sweep drops keys whose windows hold no timestamps newer than now-window and returns how many were removed.
func (r *RateWindowMemoryRepository) Sweep(now time.Time, window time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := now.Add(-window)
	removed := 0
	for key, ts := range r.windows {
		ts = prune(ts, cutoff)
		if len(ts) == 0 {
			delete(r.windows, key)
			removed++
			continue
		}
		r.windows[key] = ts
	}
	return removed
}

// Len reports the number of tracked keys.
func (r *RateWindowMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.windows)
}

// StartJanitor sweeps idle keys every interval until ctx is cancelled.
func (r *RateWindowMemoryRepository) StartJanitor(ctx context.Context, interval, window time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := r.Sweep(now, window); n > 0 && r.logger != nil {
					r.logger.WithFields(logrus.Fields{"removed": n}).Debug("rate limiter: swept idle keys")
				}
			}
		}
	}()
}

// prune keeps timestamps strictly after cutoff. Timestamps are appended in call order,
// so the first kept entry marks the split point.
func prune(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return ts
	}
	return append(ts[:0:0], ts[i:]...)
}
