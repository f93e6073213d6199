package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kartikbazzad/bunsearch/internal/bunsearchlog"
)

// Recovery recovers panics in downstream handlers and renders them as
// an internal_error response instead of gin's default plaintext 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				bunsearchlog.Get().Error("panic recovered", "panic", rec, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "internal_error",
					"message": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
