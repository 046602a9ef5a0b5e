package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWindowLimiter is a fixed-window counter shared across replicas.
// Redis errors reject the event.
type RedisWindowLimiter struct {
	rdb    redis.Cmdable
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisWindowLimiter allows limit events per window for each key.
func NewRedisWindowLimiter(rdb redis.Cmdable, prefix string, limit int, window time.Duration) *RedisWindowLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RedisWindowLimiter{rdb: rdb, prefix: prefix, limit: int64(limit), window: window}
}

// Allow increments the key's counter and starts its window on first use.
func (l *RedisWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + key

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("ratelimit: redis incr %s: %w", k, err)
	}
	return incr.Val() <= l.limit, nil
}
