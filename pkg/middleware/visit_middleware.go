package middleware

import (
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fitlead/internal/services"
)

// VisitObserver receives page views. Implementations must not block.
type VisitObserver interface {
	Observe(event services.VisitEvent) bool
}

// ClientIP prefers the first X-Forwarded-For hop and falls back to the peer address.
func ClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

// VisitLogger hands qualifying page views to the observer and always continues the chain.
func VisitLogger(observer VisitObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if services.IsPageView(c.Request.Method, c.Request.URL.Path) {
			observer.Observe(services.VisitEvent{
				IP:        ClientIP(c),
				Path:      c.Request.URL.Path,
				UserAgent: c.Request.UserAgent(),
				At:        time.Now().UTC(),
			})
		}
		c.Next()
	}
}
