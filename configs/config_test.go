package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
}

func TestLoad(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,,")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("RATE_LIMIT_BACKEND", "memory")
	t.Setenv("STORAGE_TIMEOUT", "3s")
	t.Setenv("DATABASE_URL", "postgres://cms@db/cms")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	require.Equal(t, 5, cfg.RateLimit.RequestsPerMinute)
	require.Equal(t, 3*time.Second, cfg.Storage.Timeout)
	require.Equal(t, "postgres://cms@db/cms", cfg.Database.DSN)
	require.Equal(t, "secret", cfg.JWT.Secret)
	require.Empty(t, cfg.Server.TrustedProxies)
}

func TestLoadTrustedProxies(t *testing.T) {
	setRequired(t)
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 2001:db8::/32")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.0/8", "2001:db8::/32"}, cfg.Server.TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "10.0.0.1")
	_, err = Load()
	require.ErrorContains(t, err, "TRUSTED_PROXIES")
}

func TestLoadRejectsBadRateLimitBackend(t *testing.T) {
	setRequired(t)
	t.Setenv("RATE_LIMIT_BACKEND", "memcached")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("RATE_LIMIT_BACKEND", "redis")
	t.Setenv("REDIS_ENABLED", "false")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadPanicsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "x")
	require.Panics(t, func() { _, _ = Load() })
}

func TestEnvHelpersFallBack(t *testing.T) {
	t.Setenv("SOME_INT", "nope")
	t.Setenv("SOME_DURATION", "later")
	t.Setenv("SOME_FLOAT", "2.5")
	require.Equal(t, 7, getIntEnv("SOME_INT", 7))
	require.Equal(t, time.Minute, getDurationEnv("SOME_DURATION", time.Minute))
	require.Equal(t, 2.5, getFloatEnv("SOME_FLOAT", 1))
	require.True(t, getBoolEnv("SOME_MISSING_BOOL", true))
}
