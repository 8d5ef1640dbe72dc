package api

import (
	"errors"
	"fmt"
)

// ErrNetwork marks a request that never produced an HTTP response: the
// transport failed or the circuit breaker refused the call.
var ErrNetwork = errors.New("network error")

// APIError is a non-2xx answer from the tasks service.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tasks api responded %d", e.StatusCode)
	}
	return fmt.Sprintf("tasks api responded %d: %s", e.StatusCode, e.Message)
}

// Message returns the server message carried by err, or fallback when err
// has none.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
