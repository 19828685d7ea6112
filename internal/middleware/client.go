package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// UnknownClient identifies requests that carry no client address header.
const UnknownClient = "unknown"

// ClientID returns the visitor address as reported by the CDN: the whole X-Forwarded-For
// value including any proxy chain, then X-Real-IP.
func ClientID(c *gin.Context) string {
	if fwd := strings.TrimSpace(c.GetHeader("X-Forwarded-For")); fwd != "" {
		return fwd
	}
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}
	return UnknownClient
}
