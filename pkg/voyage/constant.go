package voyage

import "time"

const (
	DefaultBaseURL = "https://api.voyageai.com/v1"
	DefaultModel   = "voyage-3" // 1024 dimensions
	DefaultTimeout = 30 * time.Second

	// MaxBatchSize is the largest input list the embeddings endpoint accepts.
	MaxBatchSize = 128
)

// InputType tells Voyage how the text will be used.
type InputType string

const (
	InputTypeNone     InputType = ""
	InputTypeDocument InputType = "document"
	InputTypeQuery    InputType = "query"
)
