package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devillabs/cms-api/internal/core/domain/auth"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/devillabs/cms-api/internal/infrastructure/httpserver/helpers"
	"github.com/devillabs/cms-api/internal/infrastructure/httpserver/middleware"
	"github.com/devillabs/cms-api/test/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	return he.Code
}

func TestRequireAdmin(t *testing.T) {
	authSvc := &mocks.AuthServiceMock{
		ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
			switch token {
			case "good":
				return &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"}}, nil
			case "revoked":
				return nil, auth.ErrTokenRevoked
			}
			return nil, auth.ErrInvalidToken
		},
	}
	mw := middleware.NewJWTMiddleware(authSvc, nil).RequireAdmin()
	e := echo.New()

	cases := []struct {
		header string
		code   int
		msg    string
	}{
		{"", http.StatusUnauthorized, "missing authorization header"},
		{"Basic abc", http.StatusUnauthorized, "invalid authorization header format"},
		{"Bearer nope", http.StatusUnauthorized, "could not validate credentials"},
		{"Bearer revoked", http.StatusUnauthorized, "token has been revoked"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/blogs", nil)
		if tc.header != "" {
			req.Header.Set(echo.HeaderAuthorization, tc.header)
		}
		c := e.NewContext(req, httptest.NewRecorder())
		err := mw(okHandler)(c)
		require.Equal(t, tc.code, httpErrorCode(t, err), tc.header)
		require.Equal(t, tc.msg, err.(*echo.HTTPError).Message, tc.header)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/blogs", nil)
	req.Header.Set(echo.HeaderAuthorization, "bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, mw(func(c echo.Context) error {
		claims, err := helpers.GetAdminFromContext(c)
		require.NoError(t, err)
		require.Equal(t, "admin", claims.Subject)
		tok, ok := helpers.GetAccessTokenRaw(c)
		require.True(t, ok)
		require.Equal(t, "good", tok)
		return okHandler(c)
	})(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitHandler(t *testing.T) {
	reset := time.Now().Add(30 * time.Second)
	allowed := true
	limiter := &mocks.RateLimiterServiceMock{
		AllowFn: func(ctx context.Context, key string, limit int) ports.RateDecision {
			require.Equal(t, "contact:192.0.2.1", key)
			if allowed {
				return ports.RateDecision{Allowed: true, Limit: limit, Remaining: limit - 1, Reset: reset}
			}
			return ports.RateDecision{Allowed: false, Limit: limit, Remaining: 0, Reset: reset, RetryAfter: 29500 * time.Millisecond}
		},
	}
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_rate_limit_rejections_total"}, []string{"scope"})
	mw := middleware.NewRateLimitMiddleware(limiter, 20, rejections, nil).Handler("contact", "slow down")
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "192.0.2.1:4242"
	rec := httptest.NewRecorder()
	require.NoError(t, mw(okHandler)(e.NewContext(req, rec)))
	require.Equal(t, "20", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "19", rec.Header().Get("X-RateLimit-Remaining"))
	require.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

	allowed = false
	rec = httptest.NewRecorder()
	err := mw(okHandler)(e.NewContext(req, rec))
	require.Equal(t, http.StatusTooManyRequests, httpErrorCode(t, err))
	require.Equal(t, "slow down", err.(*echo.HTTPError).Message)
	require.Equal(t, "30", rec.Header().Get("Retry-After"))
	require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	var m dto.Metric
	require.NoError(t, rejections.WithLabelValues("contact").Write(&m))
	require.Equal(t, 1.0, m.GetCounter().GetValue())
}
