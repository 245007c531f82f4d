package cohere

import "net/http"

// Config holds Cohere client configuration.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// EmbedRequest is the request body for POST /embed.
type EmbedRequest struct {
	Texts     []string  `json:"texts"`
	Model     string    `json:"model"`
	InputType InputType `json:"input_type"`
	Truncate  string    `json:"truncate,omitempty"`
}

// EmbedResponse is the response body of POST /embed.
type EmbedResponse struct {
	ID         string      `json:"id"`
	Embeddings [][]float32 `json:"embeddings"`
	Texts      []string    `json:"texts"`
	Meta       *Meta       `json:"meta,omitempty"`
}

// Meta carries billing information.
type Meta struct {
	BilledUnits struct {
		InputTokens int `json:"input_tokens"`
	} `json:"billed_units"`
}

type errorResponse struct {
	Message string `json:"message"`
}
