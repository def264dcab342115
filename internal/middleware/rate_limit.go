package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter decides whether another request for key is allowed
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// TokenBucket is an in-memory per-key limiter refilled at a fixed rate per
// minute. Keys idle long enough to be full again are dropped.
type TokenBucket struct {
	limit rate.Limit
	burst int
	ttl   time.Duration

	mu    sync.Mutex
	state map[string]*bucket
	swept time.Time
	now   func() time.Time
}

type bucket struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewTokenBucket creates a limiter with capacity tokens refilled perMinute
func NewTokenBucket(capacity, perMinute int) *TokenBucket {
	if capacity <= 0 {
		capacity = perMinute
	}
	ttl := time.Minute
	if perMinute > 0 {
		if full := time.Duration(capacity) * time.Minute / time.Duration(perMinute); full > ttl {
			ttl = full
		}
	}
	return &TokenBucket{
		limit: rate.Limit(float64(perMinute) / 60),
		burst: capacity,
		ttl:   ttl,
		state: make(map[string]*bucket),
		now:   time.Now,
	}
}

// Allow takes a token for key
func (l *TokenBucket) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.swept) >= l.ttl {
		for k, b := range l.state {
			if now.Sub(b.seen) >= l.ttl {
				delete(l.state, k)
			}
		}
		l.swept = now
	}

	b, ok := l.state[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.state[key] = b
	}
	b.seen = now
	return b.limiter.AllowN(now, 1), nil
}

// Len reports how many keys are being tracked
func (l *TokenBucket) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.state)
}

// RedisLimiter is a fixed-window counter shared by every instance
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

// NewRedisLimiter allows limit requests per window for each key
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: "pharmahub:ratelimit:",
	}
}

// Allow increments the key's counter for the current window
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + key
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}
	return n <= l.limit, nil
}

// RateLimit rejects callers over the limiter's budget, keyed by client IP.
// Limiter failures let the request through.
func RateLimit(limiter Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		allowed, err := limiter.Allow(c.Request.Context(), scope+":"+ip)
		if err != nil {
			logger.Warn().Err(err).Str("scope", scope).Msg("Rate limiter unavailable")
			c.Next()
			return
		}
		if !allowed {
			HandleAPIError(c, apperrors.ErrRateLimited)
			return
		}
		c.Next()
	}
}
