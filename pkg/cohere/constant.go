package cohere

import "time"

const (
	DefaultBaseURL = "https://api.cohere.ai/v1"
	DefaultModel   = "embed-english-v3.0"
	DefaultTimeout = 30 * time.Second

	// MaxBatchSize is the maximum number of texts per embed call.
	MaxBatchSize = 96
)

// InputType is required by v3 embedding models.
type InputType string

const (
	InputTypeSearchDocument InputType = "search_document"
	InputTypeSearchQuery    InputType = "search_query"
	InputTypeClassification InputType = "classification"
	InputTypeClustering     InputType = "clustering"
)
