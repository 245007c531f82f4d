package router

import (
	"context"
	"fmt"

	"shop-assistant/pkg/embedding"
	"shop-assistant/pkg/metrics"
)

// Classify embeds query once in query mode and returns the route whose best
// example is most similar. Earlier routes win ties. A winning score below
// threshold yields RouteUnknown with that score.
func (r *EmbeddingRouter) Classify(ctx context.Context, query string, threshold float64) (Result, error) {
	vectors, err := r.embedder.Embed(ctx, []string{query}, embedding.ModeQuery)
	if err != nil {
		return Result{}, fmt.Errorf("%s: embed query: %w", LogPrefixClassify, err)
	}
	if len(vectors) != 1 {
		return Result{}, fmt.Errorf("%s: %w: got %d, want 1", LogPrefixClassify, embedding.ErrUnexpectedVectorLen, len(vectors))
	}
	queryVec := vectors[0]

	bestIdx := -1
	var bestScore float64
	for i, set := range r.sets {
		score, err := maxSimilarity(queryVec, set.vectors)
		if err != nil {
			return Result{}, fmt.Errorf("%s: route %q: %w", LogPrefixClassify, set.name, err)
		}
		if bestIdx < 0 || score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	result := Result{Route: r.sets[bestIdx].name, Score: bestScore}
	if bestScore < threshold {
		result.Route = RouteUnknown
	}

	metrics.ClassificationsTotal.WithLabelValues(result.Route).Inc()
	metrics.ClassificationScore.Observe(result.Score)
	r.l.Debugf(ctx, "%s: route=%s score=%.4f threshold=%.2f", LogPrefixClassify, result.Route, result.Score, threshold)

	return result, nil
}

func maxSimilarity(query []float32, examples [][]float32) (float64, error) {
	best := -1.0
	for _, ex := range examples {
		s, err := embedding.CosineSimilarity(query, ex)
		if err != nil {
			return 0, err
		}
		if s > best {
			best = s
		}
	}
	return best, nil
}
