package errors

import (
	stderrors "errors"
	"fmt"
	"unicode/utf8"
)

// maxBodyInError caps how much of a response body is kept on HTTPError.
const maxBodyInError = 512

// NewHTTPError creates an HTTPError for a non-success response.
func NewHTTPError(op, method, path string, statusCode int, body []byte) *HTTPError {
	b := string(body)
	if len(b) > maxBodyInError {
		// Never split a UTF-8 sequence.
		cut := maxBodyInError
		for cut > 0 && !utf8.RuneStart(b[cut]) {
			cut--
		}
		b = b[:cut] + "..."
	}
	return &HTTPError{Op: op, Method: method, Path: path, StatusCode: statusCode, Body: b}
}

// NewNetworkError creates a NetworkError for op.
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// NewDecodeError creates a DecodeError for op.
func NewDecodeError(op string, err error) *DecodeError {
	return &DecodeError{Op: op, Err: err}
}

// Describe renders err with the request line when one is known. Used by the
// CLI for human-readable failures.
func Describe(err error) string {
	var he *HTTPError
	if stderrors.As(err, &he) && he.Method != "" {
		return fmt.Sprintf("%s %s: HTTP %d", he.Method, he.Path, he.StatusCode)
	}
	return err.Error()
}
