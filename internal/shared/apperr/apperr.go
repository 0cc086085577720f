// Package apperr holds the errors handlers may surface to clients and their HTTP status.
package apperr

import (
	"errors"
	"net/http"

	"github.com/andrasnagy-data/bloglist/internal/shared/store"
)

var (
	ErrUnauthenticated = errors.New("token missing or invalid")
	ErrMalformedBody   = errors.New("malformed JSON body")
	ErrBodyTooLarge    = errors.New("request body too large")
)

type (
	// ValidationError is a rejected input field. Message is sent to the client as is.
	ValidationError struct {
		Message string
	}

	// UnauthorizedError is a known caller acting on something it does not own.
	UnauthorizedError struct {
		Message string
	}

	NotFoundError struct {
		Message string
	}
)

func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *NotFoundError) Error() string     { return e.Message }

func Validation(msg string) error   { return &ValidationError{Message: msg} }
func Unauthorized(msg string) error { return &UnauthorizedError{Message: msg} }

// NotFound wraps store.ErrNotFound with a client facing message.
func NotFound(msg string) error { return &NotFoundError{Message: msg} }

func (e *NotFoundError) Unwrap() error { return store.ErrNotFound }

// Status maps err to an HTTP status and client message. ok is false for errors that are not
// part of the taxonomy; those become a 500 without detail.
func Status(err error) (status int, msg string, ok bool) {
	var (
		validation   *ValidationError
		unauthorized *UnauthorizedError
		notFound     *NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Message, true
	case errors.Is(err, store.ErrInvalidID):
		return http.StatusBadRequest, "malformatted id", true
	case errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest, ErrMalformedBody.Error(), true
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, ErrBodyTooLarge.Error(), true
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, ErrUnauthenticated.Error(), true
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized, unauthorized.Message, true
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Message, true
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not found", true
	default:
		return http.StatusInternalServerError, "internal server error", false
	}
}
