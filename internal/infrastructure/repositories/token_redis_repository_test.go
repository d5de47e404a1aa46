package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/devillabs/cms-api/internal/infrastructure/repositories"
	"github.com/stretchr/testify/require"
)

func TestTokenBlacklistRedisRepository(t *testing.T) {
	mr, client := newMiniRedis(t)
	repo := repositories.NewTokenBlacklistRedisRepository(client)
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "abc", time.Now().Add(time.Hour)))
	revoked, err = repo.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	require.True(t, revoked)
	require.Greater(t, mr.TTL("cms_tokens:blacklist:abc"), 59*time.Minute)

	mr.FastForward(2 * time.Hour)
	revoked, err = repo.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestTokenBlacklistRedisRepository_ExpiredTokenIsNotStored(t *testing.T) {
	mr, client := newMiniRedis(t)
	repo := repositories.NewTokenBlacklistRedisRepository(client)

	require.NoError(t, repo.Revoke(context.Background(), "old", time.Now().Add(-time.Minute)))
	require.False(t, mr.Exists("cms_tokens:blacklist:old"))
}
