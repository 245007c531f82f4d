package openaicompat

import "context"

// IClient is a chat-completions client for any OpenAI-compatible vendor.
// Implementations are safe for concurrent use.
type IClient interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Vendor() string
	Model() string
}

// New creates a client for cfg.Vendor.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &clientImpl{
		vendor:     cfg.vendorName(),
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}
