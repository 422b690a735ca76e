// Package apperr is the error taxonomy shared by use cases and handlers.
// Use cases return taxonomy errors; handlers translate them to HTTP.
package apperr

import (
	"net/http"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindInvalidInput   Kind = "INVALID_INPUT"
	KindUnauthorized   Kind = "UNAUTHORIZED"
	KindForbidden      Kind = "FORBIDDEN"
	KindNotFound       Kind = "NOT_FOUND"
	KindConflict       Kind = "CONFLICT"
	KindStorageFailure Kind = "STORAGE_FAILURE"
	KindInternal       Kind = "INTERNAL"
)

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindStorageFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified error carrying a caller-safe message.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error of the same kind, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.cause == nil && (t.Message == "" || t.Message == e.Message)
}

var (
	ErrInvalidInput   = &Error{Kind: KindInvalidInput}
	ErrUnauthorized   = &Error{Kind: KindUnauthorized}
	ErrForbidden      = &Error{Kind: KindForbidden}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrConflict       = &Error{Kind: KindConflict}
	ErrStorageFailure = &Error{Kind: KindStorageFailure}
)

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies err; the cause stays reachable but is never shown to callers.
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, cause: errors.WithStack(err)}
}

func InvalidInput(message string) error { return New(KindInvalidInput, message) }
func Unauthorized(message string) error { return New(KindUnauthorized, message) }
func Forbidden(message string) error    { return New(KindForbidden, message) }
func NotFound(message string) error     { return New(KindNotFound, message) }
func Conflict(message string) error     { return New(KindConflict, message) }

// KindOf returns the kind of the first classified error in the chain,
// or KindInternal for anything unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// PublicMessage is the message safe to return to a client.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "internal server error"
}
