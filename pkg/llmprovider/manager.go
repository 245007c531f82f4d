package llmprovider

import (
	"context"
	"fmt"
	"time"

	"shop-assistant/pkg/log"
	"shop-assistant/pkg/metrics"
)

// Manager walks providers in priority order, retrying each before falling back to the next.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxTotalTimeout bounds the whole chain, retries and fallbacks included. Zero disables it.
	MaxTotalTimeout time.Duration
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	return &Manager{providers: providers, config: &cfg, logger: logger}
}

// Providers returns the providers in priority order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent returns the first successful completion. When every attempted provider
// fails the error wraps ErrAllProvidersFailed and the last *ProviderError.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	candidates := m.providers
	if !m.config.FallbackEnabled {
		candidates = candidates[:1]
	}

	var lastErr *ProviderError
	for i, p := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("llm chain stopped after %d of %d provider(s): %w", i, len(candidates), err)
		}

		resp, err := m.tryProvider(ctx, p, req)
		if err != nil {
			m.record(ctx, p, nil, err)
			lastErr = &ProviderError{Provider: p.Name(), Err: err}
			continue
		}
		m.record(ctx, p, resp, nil)
		return resp, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// tryProvider calls p up to RetryAttempts times, waiting attempt*RetryDelay between calls.
func (m *Manager) tryProvider(ctx context.Context, p Provider, req *Request) (*Response, error) {
	var err error
	for attempt := range m.config.RetryAttempts {
		if attempt > 0 {
			wait := time.NewTimer(time.Duration(attempt) * m.config.RetryDelay)
			select {
			case <-wait.C:
			case <-ctx.Done():
				wait.Stop()
				return nil, ctx.Err()
			}
		}

		var resp *Response
		if resp, err = p.GenerateContent(ctx, req); err == nil {
			return resp, nil
		}
	}
	return nil, err
}

func (m *Manager) record(ctx context.Context, p Provider, resp *Response, err error) {
	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(p.Name(), "failure").Inc()
		m.logger.Warn(ctx, "LLM generation failed",
			"provider", p.Name(),
			"model", p.Model(),
			"error", err.Error(),
		)
		return
	}

	metrics.LLMRequestsTotal.WithLabelValues(p.Name(), "success").Inc()
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
		metrics.LLMTokensTotal.WithLabelValues(p.Name(), "input").Add(float64(in))
		metrics.LLMTokensTotal.WithLabelValues(p.Name(), "output").Add(float64(out))
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", p.Name(),
		"model", p.Model(),
		"input_tokens", in,
		"output_tokens", out,
	)
}
