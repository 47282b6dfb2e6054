package client

import clienterrors "github.com/todoapp/todo-client/client/internal/errors"

// Re-exported error types so callers can use errors.As without importing
// internal packages. Errors are returned exactly as the transport produced
// them; the client does no translation.
type (
	HTTPError    = clienterrors.HTTPError
	NetworkError = clienterrors.NetworkError
	DecodeError  = clienterrors.DecodeError
)

// ErrEmptyBody is wrapped by DecodeError when a value was expected but none was sent.
var ErrEmptyBody = clienterrors.ErrEmptyBody

// ErrMalformedBody is wrapped by DecodeError when an acknowledgement is not JSON.
var ErrMalformedBody = clienterrors.ErrMalformedBody

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int { return clienterrors.StatusCode(err) }

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool { return clienterrors.IsNotFound(err) }

// Describe renders err for humans, including the request line for HTTP errors.
func Describe(err error) string { return clienterrors.Describe(err) }
