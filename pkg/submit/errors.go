package submit

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode marks a 2xx reply whose body is not JSON.
	ErrDecode = errors.New("submit: decode response")
	// ErrNoEndpoint is returned when a sender is built without an endpoint.
	ErrNoEndpoint = errors.New("submit: endpoint is required")
)

// StatusError reports a non-2xx reply from the endpoint.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("submit: HTTP %d: %s", e.Code, e.Status)
}
