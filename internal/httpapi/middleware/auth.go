package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kartikbazzad/bunsearch/internal/apperr"
)

const tenantContextKey = "tenant_id"

// Auth extracts and validates the X-User-Id header, storing the parsed
// tenant id in the gin context. A missing header is a missing_auth
// error; a present-but-unparseable header is an invalid_auth error.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-Id")
		if raw == "" {
			_ = c.Error(apperr.MissingAuth("X-User-Id header is required"))
			c.Abort()
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			_ = c.Error(apperr.InvalidAuth("X-User-Id header must be a valid UUID"))
			c.Abort()
			return
		}

		c.Set(tenantContextKey, tenantID.String())
		c.Next()
	}
}

// TenantID retrieves the tenant id set by Auth. Only valid for handlers
// mounted behind the Auth middleware.
func TenantID(c *gin.Context) string {
	v, _ := c.Get(tenantContextKey)
	id, _ := v.(string)
	return id
}
