package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the caller's IP, preferring proxy headers over the
// raw remote address.
func getClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// The header may hold a comma-separated chain; the first entry is
		// the original client.
		if parts := strings.Split(xff, ","); len(parts) > 0 && parts[0] != "" {
			return strings.TrimSpace(parts[0])
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
