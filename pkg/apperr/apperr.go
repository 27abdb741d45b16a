// Package apperr classifies service errors so handlers can map them to HTTP
// status codes without string matching.
package apperr

import "errors"

// Kind identifies the category of a service error
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is a service error with a user-facing message
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an error of the given kind
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Validation creates a malformed/out-of-range input error
func Validation(message string) error {
	return New(KindValidation, message)
}

// Unauthorized creates a missing/invalid credential error
func Unauthorized(message string) error {
	return New(KindUnauthorized, message)
}

// Forbidden creates a role/ownership violation error
func Forbidden(message string) error {
	return New(KindForbidden, message)
}

// NotFound creates a missing entity error
func NotFound(message string) error {
	return New(KindNotFound, message)
}

// Conflict creates a duplicate key / referential constraint error
func Conflict(message string) error {
	return New(KindConflict, message)
}

// KindOf returns the kind of err, or KindUnknown for unclassified errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
