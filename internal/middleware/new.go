package middleware

import (
	"dentistry-assistant/pkg/log"
)

// Config holds webhook protection settings. Empty values disable the matching check.
// Client addresses come from gin's ClientIP, so X-Forwarded-For only counts when the
// engine trusts the peer (see gin.Engine.SetTrustedProxies).
type Config struct {
	SecretToken     string
	AllowedIPs      []string
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	config  Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
