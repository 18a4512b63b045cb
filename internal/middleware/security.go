package middleware

import (
	"crypto/subtle"
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	pkgResponse "dentistry-assistant/pkg/response"
	pkgTelegram "dentistry-assistant/pkg/telegram"
)

// TelegramSecret rejects updates whose secret token header does not match.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.config.SecretToken == "" {
			c.Next()
			return
		}
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.config.SecretToken)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: bad secret token from %s", c.ClientIP())
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IPAllowList rejects callers outside the configured addresses and CIDR ranges.
func (m Middleware) IPAllowList() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ip := c.ClientIP(); !ipAllowed(ip, m.config.AllowedIPs) {
			m.l.Warnf(c.Request.Context(), "middleware.IPAllowList: IP %s not whitelisted", ip)
			pkgResponse.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimit applies a per-source token bucket.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if err := m.limiter.Allow(ip); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Webhook chains every webhook check in order: IP, rate, secret.
func (m Middleware) Webhook() []gin.HandlerFunc {
	return []gin.HandlerFunc{m.IPAllowList(), m.RateLimit(), m.TelegramSecret()}
}

func ipAllowed(ip string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	parsed := net.ParseIP(ip)
	for _, a := range allowed {
		if ip == a {
			return true
		}
		if strings.Contains(a, "/") {
			_, ipNet, err := net.ParseCIDR(a)
			if err != nil || parsed == nil {
				continue
			}
			if ipNet.Contains(parsed) {
				return true
			}
		}
	}
	return false
}
