package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRequestFailed matches every *RequestError through errors.Is.
	ErrRequestFailed = errors.New("API request failed")

	// ErrClientClosed is the cause of a RequestError returned by a closed client.
	ErrClientClosed = errors.New("client is closed")
)

// RequestError is the one error kind returned for a failed call. Err holds the
// cause: a transport failure, a context error, ErrClientClosed, a body that is
// not JSON, or a *StatusError for a non-2xx response.
type RequestError struct {
	Method string // HTTP method (e.g., "GET")
	URL    string // Full request URL
	Err    error  // Underlying error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrRequestFailed, e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRequestFailed.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// StatusError describes a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("status %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode, true
	}
	return 0, false
}

// DecodeError is returned when a successful response does not fit the model
// it is converted into.
type DecodeError struct {
	Target string // Model type name
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
