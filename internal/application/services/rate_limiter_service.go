package services

import (
	"context"
	"time"

	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// RateLimiterService admits requests per client key over a sliding window.
type RateLimiterService struct {
	repo   ports.RateWindowRepository
	window time.Duration
	clock  func() time.Time
	logger *logrus.Logger
}

// RateWindow is the fixed span every client budget is counted over.
const RateWindow = time.Minute

// RateLimiterConfig groups configuration parameters for the rate limiter.
type RateLimiterConfig struct {
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func NewRateLimiterService(repo ports.RateWindowRepository, cfg *RateLimiterConfig, logger *logrus.Logger) *RateLimiterService {
	clock := time.Now
	if cfg != nil && cfg.Clock != nil {
		clock = cfg.Clock
	}
	return &RateLimiterService{repo: repo, window: RateWindow, clock: clock, logger: logger}
}

func (s *RateLimiterService) CheckAndRecord(ctx context.Context, key string, limit int) bool {
	return s.Allow(ctx, key, limit).Allowed
}

func (s *RateLimiterService) Allow(ctx context.Context, key string, limit int) ports.RateDecision {
	now := s.clock()
	state, err := s.repo.RecordIfBelow(ctx, key, limit, s.window, now)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"key": key}).WithError(err).Error("rate limiter: window update failed")
		}
		// fail open
		return ports.RateDecision{Allowed: true, Limit: limit, Remaining: limit, Reset: now.Add(s.window)}
	}

	d := ports.RateDecision{Allowed: state.Allowed, Limit: limit, Reset: now.Add(s.window)}
	if !state.Oldest.IsZero() {
		d.Reset = state.Oldest.Add(s.window)
	}
	if remaining := limit - state.Count; remaining > 0 {
		d.Remaining = remaining
	}
	if !d.Allowed {
		d.RetryAfter = d.Reset.Sub(now)
		if d.RetryAfter < time.Second {
			d.RetryAfter = time.Second
		}
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"key": key, "count": state.Count, "limit": limit, "allowed": state.Allowed}).Debug("rate limiter window state")
	}
	return d
}
