package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/devillabs/cms-api/internal/core/ports"
)

type RateLimitMiddleware struct {
	rateLimiter ports.RateLimiterService
	limit       int
	rejections  *prometheus.CounterVec
	logger      *logrus.Logger
}

func NewRateLimitMiddleware(rateLimiter ports.RateLimiterService, limit int, rejections *prometheus.CounterVec, logger *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{rateLimiter: rateLimiter, limit: limit, rejections: rejections, logger: logger}
}

// Handler limits each client IP to the configured requests per window within scope.
// Rejected requests get 429 with message and are not recorded.
func (r *RateLimitMiddleware) Handler(scope, message string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			d := r.rateLimiter.Allow(c.Request().Context(), scope+":"+ip, r.limit)

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			if !d.Reset.IsZero() {
				h.Set("X-RateLimit-Reset", strconv.FormatInt(d.Reset.Unix(), 10))
			}

			if !d.Allowed {
				h.Set("Retry-After", strconv.Itoa(int(math.Ceil(d.RetryAfter.Seconds()))))
				if r.rejections != nil {
					r.rejections.WithLabelValues(scope).Inc()
				}
				if r.logger != nil {
					r.logger.WithFields(logrus.Fields{"scope": scope, "ip": ip}).Warn("rate limit exceeded")
				}
				return echo.NewHTTPError(http.StatusTooManyRequests, message)
			}
			return next(c)
		}
	}
}
