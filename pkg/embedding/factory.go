package embedding

import (
	"fmt"
	"strings"

	"shop-assistant/config"
	"shop-assistant/pkg/cohere"
	"shop-assistant/pkg/voyage"
)

// InitializeProvider builds the configured embedding provider, wrapped with the
// query cache when cfg.CacheSize > 0.
func InitializeProvider(cfg *config.EmbeddingConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("embedding config is nil")
	}

	var p Provider
	switch strings.ToLower(cfg.Provider) {
	case "", "voyage":
		if cfg.VoyageAPIKey == "" {
			return nil, fmt.Errorf("voyage: %w", ErrMissingAPIKey)
		}
		client, err := voyage.New(cfg.VoyageAPIKey)
		if err != nil {
			return nil, err
		}
		client.WithModel(cfg.Model).WithBaseURL(cfg.BaseURL)
		p = NewVoyageAdapter(client)

	case "cohere":
		if cfg.CohereAPIKey == "" {
			return nil, fmt.Errorf("cohere: %w", ErrMissingAPIKey)
		}
		client, err := cohere.New(cohere.Config{
			APIKey:  cfg.CohereAPIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		p = NewCohereAdapter(client)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}

	return NewCached(p, cfg.CacheSize, cfg.CacheTTL), nil
}
