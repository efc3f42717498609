package requester

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrURLRequired is returned when RequestOptions carries no target URL.
	ErrURLRequired = errors.New("request url is required")
	// ErrResponseTooLarge is wrapped in a TransportError when an upstream body exceeds the read limit.
	ErrResponseTooLarge = errors.New("response body too large")
)

// HTTPError is returned for non-2xx responses. The status code and the
// upstream body are both kept so the failure can be diagnosed by the caller.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP Request failed: %d - %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// TransportError is returned when no HTTP response was received
// (DNS failure, refused connection, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "HTTP Request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
