// Package embeddingtest provides a deterministic embedding.Provider for tests.
package embeddingtest

import (
	"context"
	"sync"

	"shop-assistant/pkg/embedding"
)

// Call records one Embed invocation.
type Call struct {
	Texts []string
	Mode  embedding.Mode
}

// Provider returns Vectors[text] for known texts and Fallback otherwise.
// Set Err to make every call fail.
type Provider struct {
	Vectors  map[string][]float32
	Fallback []float32
	Err      error

	mu    sync.Mutex
	calls []Call
}

var _ embedding.Provider = (*Provider)(nil)

func (p *Provider) Embed(ctx context.Context, texts []string, mode embedding.Mode) ([][]float32, error) {
	p.mu.Lock()
	p.calls = append(p.calls, Call{Texts: append([]string(nil), texts...), Mode: mode})
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := p.Vectors[t]; ok {
			out[i] = v
			continue
		}
		out[i] = p.Fallback
	}
	return out, nil
}

func (p *Provider) Name() string  { return "test" }
func (p *Provider) Model() string { return "test-embed" }

// Calls returns a copy of the recorded invocations.
func (p *Provider) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}

// CallsWithMode counts recorded invocations made in mode.
func (p *Provider) CallsWithMode(mode embedding.Mode) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		if c.Mode == mode {
			n++
		}
	}
	return n
}
