package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// slidingWindowScript prunes, counts and conditionally appends in one round trip.
// Scores are unix milliseconds; members are unique so equal timestamps both count.
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
local allowed = 0
if count < limit then
  redis.call('ZADD', key, now, ARGV[4])
  redis.call('PEXPIRE', key, window)
  count = count + 1
  allowed = 1
end
local oldest = 0
local first = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
if first[2] then
  oldest = tonumber(first[2])
end
return {allowed, count, oldest}
`)

// RateLimitRedisRepository implements sliding-window storage with Redis sorted sets,
// shared by every API replica pointed at the same Redis.
type RateLimitRedisRepository struct {
	r         redis.Cmdable
	keyPrefix string
}

func NewRateLimitRedisRepository(r redis.Cmdable, keyPrefix string) *RateLimitRedisRepository {
	return &RateLimitRedisRepository{r: r, keyPrefix: keyPrefix}
}

// RecordIfBelow implements ports.RateWindowRepository.
func (repo *RateLimitRedisRepository) RecordIfBelow(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (ports.RateWindowState, error) {
	redisKey := fmt.Sprintf("%s:%s", repo.keyPrefix, key)
	res, err := slidingWindowScript.Run(ctx, repo.r, []string{redisKey},
		now.UnixMilli(), window.Milliseconds(), limit, uuid.NewString()).Result()
	if err != nil {
		return ports.RateWindowState{}, fmt.Errorf("sliding window script: %w", err)
	}
	vals, ok := res.([]interface{})
	if !ok || len(vals) != 3 {
		return ports.RateWindowState{}, fmt.Errorf("sliding window script: unexpected reply %T", res)
	}
	allowed, _ := vals[0].(int64)
	count, _ := vals[1].(int64)
	oldestMs, _ := vals[2].(int64)

	state := ports.RateWindowState{Allowed: allowed == 1, Count: int(count)}
	if oldestMs > 0 {
		state.Oldest = time.UnixMilli(oldestMs)
	}
	return state, nil
}
