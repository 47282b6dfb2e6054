// Package errors defines the failures the todo client can surface.
// There is a single logical kind, a transport or remote failure, split into
// concrete types so callers can inspect status codes and causes.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// HTTPError reports a response that arrived with a non-2xx status.
type HTTPError struct {
	Op         string // logical operation, e.g. "list todos"
	Method     string
	Path       string
	StatusCode int
	Body       string // response body for debugging
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
}

// NetworkError wraps a failure that happened before any response was read:
// dial errors, TLS failures, timeouts and context cancellation.
type NetworkError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s network error: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a successful response whose body was empty or not the
// expected JSON shape.
type DecodeError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *DecodeError) Unwrap() error { return e.Err }

// ErrEmptyBody is wrapped by DecodeError when a value was expected but the
// body was empty or JSON null.
var ErrEmptyBody = stderrors.New("empty response body")

// ErrMalformedBody is wrapped by DecodeError when an acknowledgement body is
// present but is not valid JSON.
var ErrMalformedBody = stderrors.New("response body is not valid JSON")

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// HTTPError.
func StatusCode(err error) int {
	var he *HTTPError
	if stderrors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the remote service.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
