package usecase

import (
	"context"
	"fmt"
	"strings"

	"shop-assistant/internal/faq"
	"shop-assistant/pkg/embedding"
	"shop-assistant/pkg/metrics"
)

// Retrieve embeds query in query mode and returns the k nearest FAQ entries.
func (uc *implUseCase) Retrieve(ctx context.Context, query string, k int) ([]faq.Entry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, faq.ErrEmptyQuery
	}
	if k <= 0 {
		k = uc.opts.TopK
	}

	vectors, err := uc.embedder.Embed(ctx, []string{query}, embedding.ModeQuery)
	if err != nil {
		return nil, fmt.Errorf("internal.faq.usecase.Retrieve: embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("internal.faq.usecase.Retrieve: %w", embedding.ErrUnexpectedVectorLen)
	}

	collection := uc.Collection()
	matches, err := uc.repo.Query(ctx, collection, vectors[0], k)
	if err != nil {
		return nil, fmt.Errorf("internal.faq.usecase.Retrieve: query %s: %w", collection, err)
	}

	entries := make([]faq.Entry, 0, len(matches))
	for _, m := range matches {
		answer, ok := m.Metadata[faq.MetadataAnswer]
		if !ok {
			return nil, fmt.Errorf("internal.faq.usecase.Retrieve: %w: %s", faq.ErrMalformedEntry, m.ID)
		}
		entries = append(entries, faq.Entry{
			ID:       m.ID,
			Question: m.Document,
			Answer:   answer,
			Score:    m.Score,
		})
	}

	metrics.FaqRetrievedEntries.Observe(float64(len(entries)))
	uc.l.Debugf(ctx, "internal.faq.usecase.Retrieve: %d entries from %s for %q", len(entries), collection, query)
	return entries, nil
}
