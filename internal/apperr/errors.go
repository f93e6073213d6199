// Package apperr defines the typed error taxonomy returned by the
// search core and rendered by the HTTP layer.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind is a machine-readable error classification.
type Kind string

const (
	KindMissingAuth Kind = "missing_auth"
	KindInvalidAuth Kind = "invalid_auth"
	KindBadRequest  Kind = "bad_request"
	KindNotFound    Kind = "not_found"
	KindValidation  Kind = "validation_error"
	KindSearch      Kind = "search_error"
	KindIndex       Kind = "index_error"
	KindInternal    Kind = "internal_error"
)

var statusByKind = map[Kind]int{
	KindMissingAuth: http.StatusUnauthorized,
	KindInvalidAuth: http.StatusUnauthorized,
	KindBadRequest:  http.StatusBadRequest,
	KindNotFound:    http.StatusNotFound,
	KindValidation:  http.StatusUnprocessableEntity,
	KindSearch:      http.StatusBadRequest,
	KindIndex:       http.StatusInternalServerError,
	KindInternal:    http.StatusInternalServerError,
}

// Error is a typed application error carrying an HTTP-mappable Kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	if s, ok := statusByKind[e.Kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func MissingAuth(message string) *Error {
	return New(KindMissingAuth, message, nil)
}

func InvalidAuth(message string) *Error {
	return New(KindInvalidAuth, message, nil)
}

func BadRequest(message string) *Error {
	return New(KindBadRequest, message, nil)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message, nil)
}

func Validation(message string) *Error {
	return New(KindValidation, message, nil)
}

func Search(message string) *Error {
	return New(KindSearch, message, nil)
}

func Index(message string, err error) *Error {
	return New(KindIndex, message, err)
}

func Internal(err error) *Error {
	return New(KindInternal, "internal server error", err)
}

// As reports whether err is (or wraps) an *Error, following errors.As semantics.
func As(err error) (*Error, bool) {
	ae, ok := err.(*Error)
	if ok {
		return ae, true
	}
	type wrapper interface{ Unwrap() error }
	if w, ok := err.(wrapper); ok {
		return As(w.Unwrap())
	}
	return nil, false
}
