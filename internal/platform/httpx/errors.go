package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors understood by RespondError.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// RespondError maps an error to a failed envelope. Errors wrapping
// ErrValidation or ErrNotFound keep their own message; anything else becomes a
// 500 whose message falls back to fallback when err has none.
func RespondError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		Unauthorized(w)
	case errors.Is(err, ErrValidation):
		Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		Fail(w, http.StatusNotFound, err.Error())
	default:
		msg := fallback
		if err != nil && err.Error() != "" {
			msg = err.Error()
		}
		Fail(w, http.StatusInternalServerError, msg)
	}
}

// Error is a domain error with a user-facing message and a kind understood by
// RespondError.
type Error struct {
	Kind    error
	Message string
}

// NewError builds an Error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }
