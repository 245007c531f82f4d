package router

import (
	"context"
	"fmt"

	"shop-assistant/pkg/embedding"
	"shop-assistant/pkg/log"
)

// Router classifies free text into a route.
type Router interface {
	Classify(ctx context.Context, query string, threshold float64) (Result, error)
	Routes() []Route
}

// EmbeddingRouter scores a query against precomputed example embeddings.
// It is immutable after New and safe for concurrent use.
type EmbeddingRouter struct {
	embedder embedding.Provider
	routes   []Route
	sets     []routeEmbeddings
	l        log.Logger
}

var _ Router = (*EmbeddingRouter)(nil)

// New validates routes and embeds every example in document mode, once.
// Route order is preserved and decides ties in Classify.
func New(ctx context.Context, embedder embedding.Provider, routes []Route, l log.Logger) (*EmbeddingRouter, error) {
	if err := ValidateRoutes(routes); err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixNew, err)
	}

	r := &EmbeddingRouter{
		embedder: embedder,
		routes:   cloneRoutes(routes),
		sets:     make([]routeEmbeddings, 0, len(routes)),
		l:        l,
	}

	dim := -1
	for _, route := range r.routes {
		vectors, err := embedder.Embed(ctx, route.Examples, embedding.ModeDocument)
		if err != nil {
			return nil, fmt.Errorf("%s: embed examples of route %q: %w", LogPrefixNew, route.Name, err)
		}
		if len(vectors) != len(route.Examples) {
			return nil, fmt.Errorf("%s: route %q: %w: got %d, want %d",
				LogPrefixNew, route.Name, embedding.ErrUnexpectedVectorLen, len(vectors), len(route.Examples))
		}
		for _, v := range vectors {
			if dim < 0 {
				dim = len(v)
			}
			if len(v) != dim {
				return nil, fmt.Errorf("%s: route %q: %w", LogPrefixNew, route.Name, embedding.ErrDimensionMismatch)
			}
		}
		r.sets = append(r.sets, routeEmbeddings{name: route.Name, vectors: vectors})
	}

	l.Infof(ctx, "%s: embedded %d routes with %s/%s", LogPrefixNew, len(r.sets), embedder.Name(), embedder.Model())
	return r, nil
}

// Routes returns a copy of the route table in declared order.
func (r *EmbeddingRouter) Routes() []Route {
	return cloneRoutes(r.routes)
}

func cloneRoutes(routes []Route) []Route {
	out := make([]Route, len(routes))
	for i, route := range routes {
		out[i] = Route{Name: route.Name, Examples: append([]string(nil), route.Examples...)}
	}
	return out
}
