// Package error defines the error taxonomy of the finance client.
package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Remote call errors.
var (
	// ErrUnauthorized matches a RemoteError whose status is 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound matches a RemoteError whose status is 404.
	ErrNotFound = errors.New("not found")
)

// TransportError is returned when a call never reached the service or never
// returned (network failure, timeout).
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError is returned when the service was reached and answered with a
// non-success status. Detail is the service's human-readable message and may
// be empty.
type RemoteError struct {
	Method string
	Path   string
	Status int
	Detail string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("remote error: %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("remote error: %s %s returned %d", e.Method, e.Path, e.Status)
}

// Is lets errors.Is match status-specific sentinels.
func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// ValidationError describes invalid input. Validation is owned by the
// service; the client declares the type so callers can classify service-side
// validation failures consistently.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
