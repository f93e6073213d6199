package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kartikbazzad/bunsearch/internal/bunsearchlog"
)

// RequestLogger logs one structured line per request at INFO for
// 2xx/4xx and ERROR for 5xx, carrying the tenant id when Auth ran.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if tenantID := TenantID(c); tenantID != "" {
			attrs = append(attrs, "tenant_id", tenantID)
		}

		logger := bunsearchlog.Get()
		if status >= 500 {
			logger.Error("request handled", attrs...)
		} else {
			logger.Info("request handled", attrs...)
		}
	}
}
