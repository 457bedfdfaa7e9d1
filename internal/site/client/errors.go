package client

import (
	"fmt"
)

// NetworkError means no usable response arrived: the transport failed or a
// successful response carried a body that is not JSON.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a response outside the 2xx range.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}
