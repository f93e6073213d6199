package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/kartikbazzad/bunsearch/internal/apperr"
)

// errorResponse is the wire shape of every error body.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// errorMapper inspects the last error attached to the gin context
// after handler execution and renders it per the error taxonomy; a
// response already written by the handler is left untouched.
func errorMapper() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		ae, ok := apperr.As(err)
		if !ok {
			ae = apperr.Internal(err)
		}

		resp := errorResponse{
			Error:   string(ae.Kind),
			Message: ae.Message,
		}
		if ae.Kind == apperr.KindInternal && ae.Err != nil {
			resp.Details = ae.Err.Error()
		}

		c.JSON(ae.Status(), resp)
	}
}
