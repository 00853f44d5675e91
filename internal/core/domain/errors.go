package domain

import (
	"errors"
	"fmt"
)

var ErrNoSession = errors.New("no authentication token found")
var ErrSessionExpired = errors.New("session expired")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrStallNotFound = errors.New("stall not found")
var ErrStallUnavailable = errors.New("stall is not open for applications")
var ErrEventNotSelected = errors.New("no event selected")

// ValidationError carries a client-side field check failure. It blocks the
// network call that would otherwise have been made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError is a non-2xx response from the backend. Message is the
// backend's own {message} body, surfaced verbatim to the caller; when the
// body carries none, the gateway fills in a per-action fallback.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
}

// UpstreamMessage extracts the backend-supplied message from err, or returns
// the empty string when err is not an UpstreamError.
func UpstreamMessage(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Message
	}
	return ""
}
