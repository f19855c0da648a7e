package client

import (
	"errors"
	"fmt"
)

// Transport-level failures, folded into two sentinels so callers can treat
// "backend not reachable" uniformly.
var (
	ErrTimeout     = errors.New("backend_timeout")
	ErrUnavailable = errors.New("backend_unavailable")
)

// HTTPError represents a non-2xx HTTP response from the API.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// IsUnreachable returns true if err is a transport-level failure (timeout or
// connection error) rather than an HTTP response.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrUnavailable)
}
