package cohere

import (
	"context"
	"fmt"
	"net/http"
)

// ICohere defines the Cohere embedding client.
type ICohere interface {
	Embed(ctx context.Context, texts []string, inputType InputType) ([][]float32, error)
	Model() string
}

// New creates a Cohere client.
func New(cfg Config) (ICohere, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("cohere: APIKey is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &cohereImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
