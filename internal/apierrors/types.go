// Package apierrors defines the SDK's single HTTP failure kind plus the
// recoverability classification that drives the opt-in retry policy.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned whenever the backend answers with a non-2xx status.
// Message carries the response body text verbatim; when the body was empty
// (or unreadable) it falls back to "HTTP <code>".
type APIError struct {
	StatusCode int
	Message    string
}

// New builds an APIError from a status code and the raw body text,
// applying the empty-body fallback.
func New(statusCode int, body string) *APIError {
	msg := body
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", statusCode)
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}

// Error returns exactly the message; callers surface it as-is.
func (e *APIError) Error() string { return e.Message }

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may be retried with exponential backoff:
	// 5xx responses, 408, 429, and network-level failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail immediately without retry:
	// the remaining 4xx responses and local (request-building) errors.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}
