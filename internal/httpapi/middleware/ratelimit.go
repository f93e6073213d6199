package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// tenantLimiter stores a rate.Limiter per tenant id, keyed by tenant
// rather than client IP so one noisy tenant can't starve another's
// writer lock.
type tenantLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newTenantLimiter(rateLimit rate.Limit, burst int) *tenantLimiter {
	return &tenantLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rateLimit,
		burst:    burst,
	}
}

func (tl *tenantLimiter) get(tenantID string) *rate.Limiter {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	l, ok := tl.limiters[tenantID]
	if !ok {
		l = rate.NewLimiter(tl.rate, tl.burst)
		tl.limiters[tenantID] = l
	}
	return l
}

// RateLimit returns a middleware that limits each tenant to
// requestsPerSecond sustained requests with the given burst. Must be
// mounted after Auth so TenantID is available.
func RateLimit(requestsPerSecond int, burst int) gin.HandlerFunc {
	tl := newTenantLimiter(rate.Limit(requestsPerSecond), burst)

	return func(c *gin.Context) {
		tenantID := TenantID(c)
		if tenantID == "" {
			c.Next()
			return
		}

		if !tl.get(tenantID).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
