package conversation

import "errors"

var (
	ErrEmptySessionID = errors.New("session id is empty")
	ErrEmptyQuery     = errors.New("query is empty")
	ErrSessionUnknown = errors.New("session not found")
)
