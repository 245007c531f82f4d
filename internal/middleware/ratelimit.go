package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"shop-assistant/config"
	"shop-assistant/pkg/response"
)

const (
	defaultRequestsPerMin  = 60
	defaultTrackedClients  = 1000
	defaultClientIdleReset = 5 * time.Minute
)

// RateLimit throttles requests per client IP with a token bucket.
// Clients idle for longer than the configured reset start with a full bucket.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mw.enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !mw.limiter.Allow(ip) {
			mw.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: client %s exceeded rate limit on %s", ip, c.FullPath())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	perMin := cfg.RequestsPerMin
	if perMin <= 0 {
		perMin = defaultRequestsPerMin
	}
	size := cfg.TrackedClients
	if size <= 0 {
		size = defaultTrackedClients
	}
	ttl := cfg.ClientIdleReset
	if ttl <= 0 {
		ttl = defaultClientIdleReset
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = max(1, perMin/10)
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, ttl),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	// Re-adding refreshes the idle timer.
	rl.limiters.Add(key, limiter)
	rl.mu.Unlock()

	return limiter.Allow()
}
