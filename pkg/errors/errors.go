package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for the client-side failure taxonomy.
var (
	// ErrTransport indicates the backend could not be reached at all
	// (connection refused, DNS failure, timeout).
	ErrTransport = errors.New("transport failure")

	// ErrServer indicates the backend answered with a non-2xx status.
	ErrServer = errors.New("server error")

	// ErrNotFound indicates a referenced resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates client-side validation rejected the input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecode indicates the backend returned a body that does not match
	// the expected shape. A wrong shape is a protocol violation, never an
	// empty result.
	ErrDecode = errors.New("malformed response")
)

// RequestError is the single failure type surfaced by every API operation.
// It carries the operation name so callers can report which call failed
// without inspecting the transport details.
type RequestError struct {
	// Op is the API operation that failed, e.g. "listProducts".
	Op string
	// Status is the HTTP status code, or 0 for transport-level failures.
	Status int
	// Err is the underlying cause, wrapping one of the sentinel errors.
	Err error
}

func (e *RequestError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Request wraps err into a RequestError for the given operation.
func Request(op string, status int, err error) *RequestError {
	return &RequestError{Op: op, Status: status, Err: err}
}

// Transport creates a RequestError for a failure before any response arrived.
func Transport(op string, err error) *RequestError {
	return &RequestError{Op: op, Err: fmt.Errorf("%w: %w", ErrTransport, err)}
}

// Server creates a RequestError for a non-2xx response.
func Server(op string, status int, body string) *RequestError {
	return &RequestError{Op: op, Status: status, Err: fmt.Errorf("%w: %s", ErrServer, body)}
}

// Decode creates a RequestError for an unparseable response body.
func Decode(op string, err error) *RequestError {
	return &RequestError{Op: op, Err: fmt.Errorf("%w: %w", ErrDecode, err)}
}

// InvalidInput creates an error for a client-side validation failure.
func InvalidInput(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, message)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// OpOf returns the operation name carried by err, or "" if err is not a
// RequestError.
func OpOf(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Op
	}
	return ""
}
