package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	redis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"task-tracker/pkg/response"
)

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects callers over their budget with 429. Limiter errors fail open.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		ok, err := m.limiter.Allow(ctx, c.ClientIP())
		if err != nil {
			m.l.Warnf(ctx, "middleware.RateLimit: limiter unavailable, allowing request: %v", err)
			c.Next()
			return
		}
		if !ok {
			if m.metrics != nil {
				m.metrics.RLBlocked.WithLabelValues(c.FullPath()).Inc()
			}
			response.Abort(c, http.StatusTooManyRequests, response.TooManyRequests)
			return
		}
		c.Next()
	}
}

// localLimiter is a per-key token bucket kept in an expiring LRU.
type localLimiter struct {
	mu       sync.Mutex // guards get-or-create on limiters
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewLocalLimiter allows requestsPerMin per key, refilled continuously.
func NewLocalLimiter(requestsPerMin, burst int) Limiter {
	if burst <= 0 {
		burst = max(1, requestsPerMin/10)
	}
	return &localLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			10000,         // Max tracked clients
			nil,           // No eviction callback
			time.Minute*5, // Idle clients are forgotten after 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *localLimiter) Allow(_ context.Context, key string) (bool, error) {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow(), nil
}

// redisLimiter is a fixed-window counter shared by every instance.
// key format: rl:<window_seconds>:<identifier>
type redisLimiter struct {
	client      redis.Cmdable
	maxRequests int64
	window      time.Duration
}

// NewRedisLimiter allows maxRequests per window per key.
func NewRedisLimiter(client redis.Cmdable, maxRequests int, window time.Duration) Limiter {
	return &redisLimiter{
		client:      client,
		maxRequests: int64(maxRequests),
		window:      window,
	}
}

func (rl *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := "rl:" + strconv.FormatInt(int64(rl.window.Seconds()), 10) + ":" + key

	val, err := rl.client.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if val == 1 {
		if err := rl.client.Expire(ctx, k, rl.window).Err(); err != nil {
			return false, err
		}
	}

	allowed := val <= rl.maxRequests
	if !allowed {
		// A failed EXPIRE on the first hit leaves the counter without a TTL.
		// Re-arm it before rejecting so the client is not blocked forever.
		if err := rl.ensureExpiry(ctx, k); err != nil {
			return false, err
		}
	}
	return allowed, nil
}

func (rl *redisLimiter) ensureExpiry(ctx context.Context, k string) error {
	ttl, err := rl.client.TTL(ctx, k).Result()
	if err != nil {
		return err
	}
	if ttl == -1 {
		return rl.client.Expire(ctx, k, rl.window).Err()
	}
	return nil
}
