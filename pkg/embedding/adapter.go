package embedding

import (
	"context"
	"fmt"

	"shop-assistant/pkg/cohere"
	"shop-assistant/pkg/voyage"
)

// VoyageAdapter adapts pkg/voyage to the Provider interface.
type VoyageAdapter struct {
	client voyage.IVoyage
}

func NewVoyageAdapter(client voyage.IVoyage) *VoyageAdapter {
	return &VoyageAdapter{client: client}
}

func (a *VoyageAdapter) Embed(ctx context.Context, texts []string, mode Mode) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrNoTexts
	}
	inputType := voyage.InputTypeDocument
	if mode == ModeQuery {
		inputType = voyage.InputTypeQuery
	}
	vectors, err := a.client.Embed(ctx, texts, inputType)
	if err != nil {
		return nil, err
	}
	return checkCount(vectors, len(texts))
}

func (a *VoyageAdapter) Name() string  { return "voyage" }
func (a *VoyageAdapter) Model() string { return a.client.Model() }

// CohereAdapter adapts pkg/cohere to the Provider interface.
type CohereAdapter struct {
	client cohere.ICohere
}

func NewCohereAdapter(client cohere.ICohere) *CohereAdapter {
	return &CohereAdapter{client: client}
}

func (a *CohereAdapter) Embed(ctx context.Context, texts []string, mode Mode) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrNoTexts
	}
	inputType := cohere.InputTypeSearchDocument
	if mode == ModeQuery {
		inputType = cohere.InputTypeSearchQuery
	}
	vectors, err := a.client.Embed(ctx, texts, inputType)
	if err != nil {
		return nil, err
	}
	return checkCount(vectors, len(texts))
}

func (a *CohereAdapter) Name() string  { return "cohere" }
func (a *CohereAdapter) Model() string { return a.client.Model() }

func checkCount(vectors [][]float32, want int) ([][]float32, error) {
	if len(vectors) != want {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrUnexpectedVectorLen, want, len(vectors))
	}
	return vectors, nil
}
