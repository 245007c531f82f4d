package embedding

import "errors"

var (
	ErrNoTexts             = errors.New("no texts to embed")
	ErrUnknownProvider     = errors.New("unknown embedding provider")
	ErrMissingAPIKey       = errors.New("embedding API key is required")
	ErrDimensionMismatch   = errors.New("vector dimensions differ")
	ErrUnexpectedVectorLen = errors.New("provider returned wrong number of vectors")
)
