package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kartikbazzad/bunsearch/internal/search"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(Options{Registry: search.NewRegistry(t.TempDir())})
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("expected status=ok, got %q", body.Status)
	}
}

func TestSearchMissingAuthHeader(t *testing.T) {
	r := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{"query": "test"})
	req := httptest.NewRequest(http.MethodPost, "/v1/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != "missing_auth" {
		t.Errorf("expected error=missing_auth, got %q", resp.Error)
	}
}

func TestSearchInvalidAuthHeader(t *testing.T) {
	r := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{"query": "test"})
	req := httptest.NewRequest(http.MethodPost, "/v1/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "not-a-uuid")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != "invalid_auth" {
		t.Errorf("expected error=invalid_auth, got %q", resp.Error)
	}
}

func TestIndexSearchDeleteRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	tenant := "11111111-1111-1111-1111-111111111111"

	indexBody, _ := json.Marshal(map[string]any{
		"id":    "doc1",
		"title": "Rust Programming Language",
		"body":  "Rust is a systems programming language",
	})
	req := httptest.NewRequest(http.MethodPut, "/v1/documents", bytes.NewReader(indexBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", tenant)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 indexing document, got %d: %s", rec.Code, rec.Body.String())
	}

	searchBody, _ := json.Marshal(map[string]any{"query": "rust programming"})
	req = httptest.NewRequest(http.MethodPost, "/v1/search", bytes.NewReader(searchBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", tenant)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 searching, got %d: %s", rec.Code, rec.Body.String())
	}

	var searchResp search.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &searchResp); err != nil {
		t.Fatalf("unmarshal search response: %v", err)
	}
	if searchResp.Total != 1 || searchResp.Results[0].ID != "doc1" {
		t.Fatalf("unexpected search response: %+v", searchResp)
	}

	deleteBody, _ := json.Marshal(map[string]any{"id": "doc1"})
	req = httptest.NewRequest(http.MethodDelete, "/v1/documents", bytes.NewReader(deleteBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", tenant)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSearchValidationError(t *testing.T) {
	r := newTestRouter(t)
	tenant := "22222222-2222-2222-2222-222222222222"

	searchBody, _ := json.Marshal(map[string]any{"query": ""})
	req := httptest.NewRequest(http.MethodPost, "/v1/search", bytes.NewReader(searchBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", tenant)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != "validation_error" {
		t.Errorf("expected error=validation_error, got %q", resp.Error)
	}
}
