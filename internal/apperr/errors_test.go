package apperr

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusByKind(t *testing.T) {
	cases := []struct {
		err      *Error
		wantCode int
	}{
		{MissingAuth("x"), http.StatusUnauthorized},
		{InvalidAuth("x"), http.StatusUnauthorized},
		{BadRequest("x"), http.StatusBadRequest},
		{NotFound("x"), http.StatusNotFound},
		{Validation("x"), http.StatusUnprocessableEntity},
		{Search("x"), http.StatusBadRequest},
		{Index("x", nil), http.StatusInternalServerError},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := c.err.Status(); got != c.wantCode {
			t.Errorf("kind=%s: expected status %d, got %d", c.err.Kind, c.wantCode, got)
		}
	}
}

func TestAsUnwrapsPlainError(t *testing.T) {
	if _, ok := As(errors.New("plain")); ok {
		t.Fatal("expected As to fail for a plain error")
	}

	ae := Validation("bad input")
	got, ok := As(ae)
	if !ok || got != ae {
		t.Fatalf("expected As to find the *Error, got %v ok=%v", got, ok)
	}
}

func TestInternalIncludesUnderlyingError(t *testing.T) {
	cause := errors.New("disk full")
	ae := Internal(cause)
	if ae.Unwrap() != cause {
		t.Fatalf("expected Unwrap to return the cause")
	}
	if ae.Error() == "" {
		t.Fatal("expected a non-empty error message")
	}
}
