package gemini

import (
	"errors"
	"fmt"
)

// ErrPromptBlocked is returned when Gemini refuses the prompt and produces no candidates.
var ErrPromptBlocked = errors.New("gemini: prompt blocked")

// APIError is a non-2xx reply from generateContent.
type APIError struct {
	StatusCode int
	Status     string // e.g. PERMISSION_DENIED
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: API error %d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}
