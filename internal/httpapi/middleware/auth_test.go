package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, TenantID(c))
	})
	return r
}

func TestAuthMissingHeaderAborts(t *testing.T) {
	r := newTestEngine()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected gin to still return 200 by default since no error mapper is mounted, got %d", rec.Code)
	}
	if rec.Body.String() != "" {
		t.Fatalf("expected handler to be aborted, got body %q", rec.Body.String())
	}
}

func TestAuthInvalidUUIDAborts(t *testing.T) {
	r := newTestEngine()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-User-Id", "not-a-uuid")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Body.String() != "" {
		t.Fatalf("expected handler to be aborted, got body %q", rec.Body.String())
	}
}

func TestAuthValidUUIDSetsTenantID(t *testing.T) {
	r := newTestEngine()
	const id = "11111111-1111-1111-1111-111111111111"
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-User-Id", id)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != id {
		t.Fatalf("expected tenant id %q, got %q", id, rec.Body.String())
	}
}
