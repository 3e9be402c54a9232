package accuweather

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for classifying upstream failures with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("decode error")
)

// UpstreamError reports a failed exchange with the weather provider: a
// non-success status, an unparseable body, or a body missing a field the
// caller needs. It carries the HTTP status and the provider's own error
// message when one was present. It is surfaced to the caller unchanged,
// never retried and never swallowed.
type UpstreamError struct {
	// Endpoint is the provider path that failed, without query string.
	Endpoint string
	// Status is the HTTP status code, or 0 when the request never
	// completed (network failure, decode failure).
	Status int
	// Message is the provider's error message or a short local
	// description of what went wrong.
	Message string
	// Err is the sentinel classifying this failure.
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("accuweather: %s: %s (status=%d)", e.Endpoint, e.Message, e.Status)
	}
	return fmt.Sprintf("accuweather: %s: %s", e.Endpoint, e.Message)
}

// Unwrap returns the sentinel for errors.Is chaining.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// sentinelForStatus maps an HTTP status code to its sentinel.
func sentinelForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusNotFound:
		return ErrNotFound
	default:
		if status >= 500 {
			return ErrServer
		}
		return ErrBadRequest
	}
}
