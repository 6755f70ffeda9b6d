package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound marks an id the provider does not know.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx provider response with its parsed error envelope.
type APIError struct {
	Status  int
	Type    string
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog: api error %d (%s): %s", e.Status, e.Type, e.Message)
	}
	return fmt.Sprintf("catalog: api error %d", e.Status)
}
