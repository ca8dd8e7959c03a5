// Package apperr contains the error kinds used across layers for stable error mapping.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	// KindStore is an opaque failure from the persistence collaborator.
	KindStore Kind = iota

	// KindInvalidInput is a malformed request body or field.
	KindInvalidInput

	// KindUnauthorized is a missing, invalid, or expired credential/token.
	KindUnauthorized

	// KindForbidden is an authenticated caller that is not the resource owner.
	KindForbidden

	// KindNotFound is a resource id with no matching record.
	KindNotFound

	// KindConflict is a duplicate unique field, e.g. email.
	KindConflict
)

// Error carries a kind and a human-readable message safe to return to clients.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, never serialized
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

// New returns an error of the given kind with a client-safe message.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches a kind and client-safe message to an underlying cause.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from an error chain. Unclassified errors are
// treated as opaque store failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// Status maps an error to an HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
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
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message for an error. Unclassified errors
// collapse to a generic message so store internals never leak.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal error"
}
