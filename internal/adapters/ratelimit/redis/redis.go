package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/config"

	"github.com/go-redis/redis/v8"
)

const (
	ActionUpload = "upload"
	ActionLike   = "like"
)

const allowScript = `
	local key = KEYS[1]
	local capacity = tonumber(ARGV[1])
	local refill_rate = tonumber(ARGV[2])
	local window = tonumber(ARGV[3])
	local now = tonumber(ARGV[4])

	local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
	local tokens = tonumber(bucket[1]) or capacity
	local last_refill = tonumber(bucket[2]) or now

	local tokens_to_add = math.floor(((now - last_refill) / window) * refill_rate)
	if tokens_to_add > 0 then
		tokens = math.min(capacity, tokens + tokens_to_add)
		last_refill = now
	end

	local allowed = 0
	if tokens > 0 then
		tokens = tokens - 1
		allowed = 1
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_refill', last_refill)
	redis.call('EXPIRE', key, window * 2)
	return allowed
`

const remainingScript = `
	local key = KEYS[1]
	local capacity = tonumber(ARGV[1])
	local refill_rate = tonumber(ARGV[2])
	local window = tonumber(ARGV[3])
	local now = tonumber(ARGV[4])

	local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
	local tokens = tonumber(bucket[1]) or capacity
	local last_refill = tonumber(bucket[2]) or now

	local tokens_to_add = math.floor(((now - last_refill) / window) * refill_rate)
	if tokens_to_add > 0 then
		tokens = math.min(capacity, tokens + tokens_to_add)
	end
	return tokens
`

type bucket struct {
	capacity int64
	refill   int64
}

// TokenBucketLimiter is a redis token bucket per key and action, implementing port.RateLimiter
type TokenBucketLimiter struct {
	client  *redis.Client
	window  time.Duration
	buckets map[string]bucket
	now     func() time.Time
}

// NewClient creates the redis client and pings it
func NewClient(ctx context.Context, cfg config.RateLimitConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// NewTokenBucketLimiter creates a limiter with one bucket per action, refilled every minute
func NewTokenBucketLimiter(client *redis.Client, cfg config.RateLimitConfig) *TokenBucketLimiter {
	return &TokenBucketLimiter{
		client: client,
		window: time.Minute,
		buckets: map[string]bucket{
			ActionUpload: {capacity: cfg.UploadsPerMinute, refill: cfg.UploadsPerMinute},
			ActionLike:   {capacity: cfg.LikesPerMinute, refill: cfg.LikesPerMinute},
		},
		now: time.Now,
	}
}

// Allow consumes a token, actions without a bucket are always allowed
func (l *TokenBucketLimiter) Allow(ctx context.Context, key string, action string) (bool, error) {
	b, ok := l.buckets[action]
	if !ok {
		return true, nil
	}

	allowed, err := l.eval(ctx, allowScript, key, action, b)
	if err != nil {
		return false, fmt.Errorf("rate limit check failed: %w", err)
	}
	return allowed == 1, nil
}

// GetRemaining returns the tokens left without consuming one
func (l *TokenBucketLimiter) GetRemaining(ctx context.Context, key string, action string) (int64, error) {
	b, ok := l.buckets[action]
	if !ok {
		return 0, nil
	}

	remaining, err := l.eval(ctx, remainingScript, key, action, b)
	if err != nil {
		return 0, fmt.Errorf("failed to get remaining tokens: %w", err)
	}
	return remaining, nil
}

// Limit returns the capacity of an action bucket
func (l *TokenBucketLimiter) Limit(action string) int64 {
	return l.buckets[action].capacity
}

// Reset clears the bucket of a key and action
func (l *TokenBucketLimiter) Reset(ctx context.Context, key string, action string) error {
	return l.client.Del(ctx, bucketKey(key, action)).Err()
}

func (l *TokenBucketLimiter) eval(ctx context.Context, script string, key string, action string, b bucket) (int64, error) {
	result, err := l.client.Eval(ctx, script, []string{bucketKey(key, action)},
		b.capacity, b.refill, int64(l.window.Seconds()), l.now().Unix()).Result()
	if err != nil {
		return 0, err
	}

	value, ok := result.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected result type %T from rate limit script", result)
	}
	return value, nil
}

func bucketKey(key string, action string) string {
	return fmt.Sprintf("rate_limit:%s:%s", key, action)
}
