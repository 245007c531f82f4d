package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shop-assistant/internal/faq/repository"
	"shop-assistant/internal/faq/repository/memory"
	"shop-assistant/pkg/embedding/embeddingtest"
	"shop-assistant/pkg/llmprovider"
	"shop-assistant/pkg/log"
)

const testCSV = "Question,Answer\n" +
	"What is your return policy?,30 days.\n" +
	"How can I track my order?,Use the tracking link in your email.\n" +
	"Do you accept credit cards?,\"Yes, all major cards.\"\n"

func newTestProvider() *embeddingtest.Provider {
	return &embeddingtest.Provider{
		Vectors: map[string][]float32{
			"What is your return policy?": {1, 0, 0},
			"How can I track my order?":   {0, 1, 0},
			"Do you accept credit cards?": {0, 0, 1},
			"Can I return a product?":     {0.9, 0.1, 0},
			"Where is my package?":        {0.1, 0.95, 0},
		},
		Fallback: []float32{0.5, 0.5, 0.5},
	}
}

type fakeGenerator struct {
	resp     *llmprovider.Response
	err      error
	requests []*llmprovider.Request
}

func (g *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	g.requests = append(g.requests, req)
	return g.resp, g.err
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  llmprovider.RoleAssistant,
			Parts: []llmprovider.Part{{Text: text}},
		},
	}
}

type fixture struct {
	uc       *implUseCase
	provider *embeddingtest.Provider
	repo     repository.VectorRepository
	gen      *fakeGenerator
	dir      string
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	dir := t.TempDir()
	if opts.Source == "" {
		opts.Source = writeFile(t, dir, "faq_data.csv", []byte(testCSV))
	}
	if opts.LockDir == "" {
		opts.LockDir = filepath.Join(dir, "locks")
	}

	f := &fixture{
		provider: newTestProvider(),
		repo:     memory.New(),
		gen:      &fakeGenerator{resp: textResponse("  Returns are accepted within 30 days.  ")},
		dir:      dir,
	}
	f.uc = New(log.NewNop(), f.repo, f.provider, f.gen, opts)
	return f
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}
