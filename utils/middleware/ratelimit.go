package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/almursalaat/admin-api/utils/cache"
	"github.com/almursalaat/admin-api/utils/response"
)

// RateLimiter throttles the public submit-application endpoint using a
// shared Redis counter, so the limit holds across processes. When Redis is
// unavailable or the limiter is disabled by flag, requests pass through.
type RateLimiter struct {
	redisCache *cache.RedisCache
	max        int64
	window     time.Duration
	disabled   bool
}

// NewRateLimiter creates a limiter allowing max requests per window per IP.
// Passing a nil cache or disabled=true turns the limiter into a no-op.
func NewRateLimiter(redisCache *cache.RedisCache, max int64, window time.Duration, disabled bool) *RateLimiter {
	return &RateLimiter{
		redisCache: redisCache,
		max:        max,
		window:     window,
		disabled:   disabled || redisCache == nil,
	}
}

// Limit is the fiber handler enforcing the per-IP counter.
func (r *RateLimiter) Limit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r.disabled {
			return c.Next()
		}

		ctx := c.Context()
		key := fmt.Sprintf("ratelimit:submit:%s", c.IP())

		count, err := r.redisCache.Increment(ctx, key)
		if err != nil {
			// Redis being down should not block legitimate applicants.
			return c.Next()
		}

		if count == 1 {
			r.redisCache.Expire(ctx, key, r.window)
		}

		if count > r.max {
			ttl, _ := r.redisCache.TTL(ctx, key)
			retryAfter := int(ttl.Seconds())
			if retryAfter < 0 {
				retryAfter = int(r.window.Seconds())
			}

			c.Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			return response.TooManyRequests(c, fmt.Sprintf("Too many applications from this address. Try again in %d seconds", retryAfter))
		}

		return c.Next()
	}
}
