package middleware

import (
	"shop-assistant/config"
	"shop-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	enabled bool
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		enabled: cfg.Enabled,
		limiter: newRateLimiter(cfg),
	}
}
