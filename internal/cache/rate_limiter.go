package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// RateLimiter is a fixed window counter: the first hit of a window sets its
// expiry, every hit increments the counter.
type RateLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// compile-time check: *RateLimiter must satisfy port.RateLimiter
var _ port.RateLimiter = (*RateLimiter)(nil)

func NewRateLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, prefix: prefix, limit: int64(limit), window: window}
}

func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := "ratelimit:" + r.prefix + ":" + key

	n, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("redis incr failed: %w", err)
	}
	if n == 1 {
		if err := r.client.Expire(ctx, k, r.window).Err(); err != nil {
			return false, 0, fmt.Errorf("redis expire failed: %w", err)
		}
	}
	if n <= r.limit {
		return true, 0, nil
	}

	retry, err := r.client.PTTL(ctx, k).Result()
	if err != nil || retry <= 0 {
		retry = r.window
	}
	return false, retry, nil
}
