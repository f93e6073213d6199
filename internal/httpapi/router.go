// Package httpapi builds the gin router serving the search service's
// HTTP surface.
package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kartikbazzad/bunsearch/internal/httpapi/middleware"
	"github.com/kartikbazzad/bunsearch/internal/search"
	"github.com/kartikbazzad/bunsearch/internal/webui"
)

const requestTimeout = 30 * time.Second

// ServerVersion is reported by the health endpoint.
const ServerVersion = "0.1.0"

// Options configures router construction.
type Options struct {
	Registry     *search.Registry
	WebUIEnabled bool
}

// NewRouter builds the service's gin engine: middleware chain, route
// groups, and handlers, mirroring platform/cmd/server/main.go's
// gin.New()+explicit-middleware construction style.
func NewRouter(opts Options) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.CORS())
	r.Use(errorMapper())

	h := &handlers{registry: opts.Registry}

	r.GET("/health", h.health)

	if opts.WebUIEnabled {
		r.GET("/ui", webui.Handler())
	}

	v1 := r.Group("/v1")
	v1.Use(middleware.Auth())
	v1.Use(middleware.RateLimit(50, 100))
	{
		v1.PUT("/documents", h.indexDocument)
		v1.DELETE("/documents", h.deleteDocument)
		v1.POST("/search", h.search)
		v1.POST("/browse", h.browse)
		v1.GET("/stats", h.stats)
	}

	return r
}
