package embedding

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"shop-assistant/pkg/metrics"
)

// CachedProvider memoises query-mode embeddings. Document-mode calls are
// bulk ingestion traffic and always go straight to the wrapped provider.
type CachedProvider struct {
	next  Provider
	cache *expirable.LRU[string, []float32]
}

// NewCached wraps next with an LRU of at most size query vectors kept for ttl.
// size <= 0 disables caching and returns next unchanged.
func NewCached(next Provider, size int, ttl time.Duration) Provider {
	if size <= 0 {
		return next
	}
	return &CachedProvider{
		next:  next,
		cache: expirable.NewLRU[string, []float32](size, nil, ttl),
	}
}

func (c *CachedProvider) Embed(ctx context.Context, texts []string, mode Mode) ([][]float32, error) {
	if mode != ModeQuery {
		return c.next.Embed(ctx, texts, mode)
	}
	if len(texts) == 0 {
		return nil, ErrNoTexts
	}

	out := make([][]float32, len(texts))
	var missTexts []string
	var missIdx []int
	for i, t := range texts {
		if v, ok := c.cache.Get(t); ok {
			out[i] = v
			metrics.EmbeddingCacheLookups.WithLabelValues("hit").Inc()
			continue
		}
		metrics.EmbeddingCacheLookups.WithLabelValues("miss").Inc()
		missTexts = append(missTexts, t)
		missIdx = append(missIdx, i)
	}

	if len(missTexts) == 0 {
		return out, nil
	}

	vectors, err := c.next.Embed(ctx, missTexts, mode)
	if err != nil {
		return nil, err
	}
	if _, err := checkCount(vectors, len(missTexts)); err != nil {
		return nil, err
	}
	for j, v := range vectors {
		out[missIdx[j]] = v
		c.cache.Add(missTexts[j], v)
	}
	return out, nil
}

func (c *CachedProvider) Name() string  { return c.next.Name() }
func (c *CachedProvider) Model() string { return c.next.Model() }

// Len reports the number of cached query vectors.
func (c *CachedProvider) Len() int { return c.cache.Len() }
