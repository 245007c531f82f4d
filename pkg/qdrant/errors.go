package qdrant

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the addressed collection does not exist.
var ErrNotFound = errors.New("qdrant: not found")

// APIError is a non-2xx response from Qdrant.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("qdrant API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("qdrant API error: %d: %s", e.StatusCode, e.Message)
}
