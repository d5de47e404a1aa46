package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const tokenPrefix = "cms_tokens"

// TokenBlacklistRedisRepository records revoked admin tokens with a TTL matching their remaining lifetime.
type TokenBlacklistRedisRepository struct {
	client redis.Cmdable
}

func NewTokenBlacklistRedisRepository(client redis.Cmdable) *TokenBlacklistRedisRepository {
	return &TokenBlacklistRedisRepository{client: client}
}

func (r *TokenBlacklistRedisRepository) Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf("%s:blacklist:%s", tokenPrefix, tokenHash)
	if err := r.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (r *TokenBlacklistRedisRepository) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	key := fmt.Sprintf("%s:blacklist:%s", tokenPrefix, tokenHash)
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return n > 0, nil
}
