package faq

import "errors"

// Domain-specific errors for the faq package.
var (
	ErrEmptyQuery        = errors.New("query is empty")
	ErrMissingUserTurn   = errors.New("conversation does not end with a User: line")
	ErrInvalidIngestMode = errors.New("invalid ingest mode")
	ErrNoSourceFiles     = errors.New("no FAQ source files matched")
	ErrMissingColumn     = errors.New("FAQ source is missing a required column")
	ErrEmptySource       = errors.New("FAQ source has no rows")
	ErrIngestLockTimeout = errors.New("timed out waiting for ingestion lock")
	ErrMalformedEntry    = errors.New("stored FAQ entry has no answer")
	ErrEmptyAnswer       = errors.New("language model returned an empty answer")
)
