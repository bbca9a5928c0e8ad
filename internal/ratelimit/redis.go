package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces limiter keys in Redis.
const keyPrefix = "orrya:ratelimit:"

// RedisLimiter is a fixed-window limiter shared by every server instance
// that points at the same Redis.
type RedisLimiter struct {
	rdb *redis.Client
	max int
	now func() time.Time
}

// NewRedisLimiter allows max requests per key per Window.
func NewRedisLimiter(rdb *redis.Client, max int) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, max: max, now: time.Now}
}

var _ Limiter = (*RedisLimiter)(nil)

// NewRedisClient parses a redis:// URL and checks the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Allow increments the counter for the current window and sets its expiry
// on first use.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := l.now()
	windowStart := now.Truncate(Window)
	k := fmt.Sprintf("%s%s:%d", keyPrefix, key, windowStart.Unix())

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("ratelimit INCR: %w", err)
	}

	if incr.Val() > int64(l.max) {
		return false, windowStart.Add(Window).Sub(now), nil
	}
	return true, 0, nil
}
