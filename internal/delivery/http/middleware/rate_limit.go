package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"skills-api/internal/delivery/http/response"
	"skills-api/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Optional. When nil or failing, per-key token buckets in memory are used.
	Redis *goredis.Client
}

// Fixed window counter: KEYS[1] counter key, ARGV[1] TTL seconds.
// Returns {count, ttl}.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// memoryLimiter keeps one token bucket per key and drops idle keys lazily.
type memoryLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	every     rate.Limit
	burst     int
	expiry    time.Duration
	lastSweep time.Time
}

func newMemoryLimiter(limit int, window time.Duration) *memoryLimiter {
	expiry := window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}
	return &memoryLimiter{
		visitors: make(map[string]*visitor),
		every:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		expiry:   expiry,
	}
}

func (m *memoryLimiter) allow(key string, now time.Time) bool {
	m.mu.Lock()
	if now.Sub(m.lastSweep) > m.expiry {
		for k, v := range m.visitors {
			if now.Sub(v.lastSeen) > m.expiry {
				delete(m.visitors, k)
			}
		}
		m.lastSweep = now
	}

	v, ok := m.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.every, m.burst)}
		m.visitors[key] = v
	}
	v.lastSeen = now
	m.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// RateLimitMiddleware rejects clients above Limit requests per Window with 429.
// It fails open: a Redis error falls back to the in-memory limiter.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if config.Limit <= 0 || config.Window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	mem := newMemoryLimiter(config.Limit, config.Window)

	return func(c *gin.Context) {
		key := config.KeyFunc(c)
		now := time.Now()
		allowed := true
		retryAfter := 1

		useMemory := config.Redis == nil
		if !useMemory {
			count, ttl, err := checkRateLimitRedis(c.Request.Context(), config.Redis, config.KeyPrefix+key, config.Window)
			if err != nil {
				logger.Log.Warn("rate limit redis unavailable, using memory", "error", err)
				useMemory = true
			} else {
				allowed = count <= config.Limit
				if ttl > 0 {
					retryAfter = ttl
				}
			}
		}
		if useMemory {
			allowed = mem.allow(key, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, window time.Duration) (int, int, error) {
	ttlSeconds := int(window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, 0, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	return int(count), int(ttl), nil
}
