package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// Decision is the outcome of a single rate limit check.
type Decision struct {
	Allowed   bool
	Remaining int
	Reset     time.Time
}

// Limiter counts requests per key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
	Config() RateLimitConfig
}

// RedisLimiter is a fixed-window counter shared by every process using the
// same Redis.
type RedisLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
}

// NewRedisLimiter creates a new Redis-backed limiter
func NewRedisLimiter(redisClient *redis.Client, config RateLimitConfig) *RedisLimiter {
	return &RedisLimiter{
		redis:  redisClient,
		config: config,
	}
}

// Config returns the limiter settings.
func (rl *RedisLimiter) Config() RateLimitConfig { return rl.config }

// Allow increments the counter for key in the current window.
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := time.Now()
	windowStart := now.Truncate(rl.config.Window)
	redisKey := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, key, windowStart.Unix())

	// Use Redis pipeline for atomic operations
	pipe := rl.redis.TxPipeline()
	incrCmd := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.config.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   count <= rl.config.Limit,
		Remaining: remaining,
		Reset:     windowStart.Add(rl.config.Window),
	}, nil
}

// LocalLimiter is an in-process token bucket per key, used when Redis is not
// configured. Limits are per process. A bucket idle for a whole window has
// refilled completely, so it is dropped and recreated on the next request.
type LocalLimiter struct {
	config    RateLimitConfig
	limit     rate.Limit
	now       func() time.Time
	mu        sync.Mutex
	buckets   map[string]*localBucket
	lastSweep time.Time
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLocalLimiter creates a new in-memory limiter
func NewLocalLimiter(config RateLimitConfig) *LocalLimiter {
	return &LocalLimiter{
		config:  config,
		limit:   rate.Every(config.Window / time.Duration(config.Limit)),
		now:     time.Now,
		buckets: make(map[string]*localBucket),
	}
}

// Config returns the limiter settings.
func (rl *LocalLimiter) Config() RateLimitConfig { return rl.config }

// Allow takes a token from the bucket for key.
func (rl *LocalLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := rl.now()

	rl.mu.Lock()
	if now.Sub(rl.lastSweep) >= rl.config.Window {
		rl.evictIdle(now)
		rl.lastSweep = now
	}
	bucket, ok := rl.buckets[key]
	if !ok {
		bucket = &localBucket{limiter: rate.NewLimiter(rl.limit, rl.config.Limit)}
		rl.buckets[key] = bucket
	}
	bucket.lastSeen = now
	limiter := bucket.limiter
	rl.mu.Unlock()

	allowed := limiter.AllowN(now, 1)
	tokens := limiter.TokensAt(now)
	remaining := int(tokens)
	if remaining < 0 {
		remaining = 0
	}

	// Time until the bucket is full again.
	missing := float64(rl.config.Limit) - tokens
	reset := now.Add(time.Duration(missing * float64(time.Second) / float64(rl.limit)))

	return Decision{Allowed: allowed, Remaining: remaining, Reset: reset}, nil
}

// evictIdle drops buckets unused for at least one window. Callers hold mu.
func (rl *LocalLimiter) evictIdle(now time.Time) {
	for key, bucket := range rl.buckets {
		if now.Sub(bucket.lastSeen) >= rl.config.Window {
			delete(rl.buckets, key)
		}
	}
}

// NewAuthRateLimiter limits login and registration attempts per client IP to
// perMinute. It uses Redis when a client is given.
func NewAuthRateLimiter(redisClient *redis.Client, perMinute int) Limiter {
	cfg := RateLimitConfig{
		Window:    time.Minute,
		Limit:     perMinute,
		KeyPrefix: "rate_limit:auth",
	}
	if redisClient != nil {
		return NewRedisLimiter(redisClient, cfg)
	}
	return NewLocalLimiter(cfg)
}

// RateLimitMiddleware returns a Gin middleware that enforces rate limiting
// per client IP. A limiter error is logged and the request is let through.
func RateLimitMiddleware(limiter Limiter, log *logrus.Logger) gin.HandlerFunc {
	cfg := limiter.Config()
	return func(c *gin.Context) {
		key := c.ClientIP()
		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.WithError(err).WithField("request_id", RequestID(c)).Warn("Rate limit check failed")
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.Reset.Unix(), 10))

		if !decision.Allowed {
			retryAfter := int(time.Until(decision.Reset).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("You have exceeded the rate limit of %d requests per %v", cfg.Limit, cfg.Window),
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
