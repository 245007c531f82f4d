package embedding

import "context"

// Mode distinguishes text being indexed from text being searched for.
// Providers with asymmetric models embed the two differently.
type Mode string

const (
	ModeDocument Mode = "document"
	ModeQuery    Mode = "query"
)

// Provider converts text into fixed-dimension vectors.
// Output has one vector per input text, in input order.
type Provider interface {
	Embed(ctx context.Context, texts []string, mode Mode) ([][]float32, error)

	// Name returns the provider name (e.g., "voyage", "cohere")
	Name() string

	// Model returns the embedding model being used
	Model() string
}
