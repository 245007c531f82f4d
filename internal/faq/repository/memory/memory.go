// Package memory is an in-process VectorRepository used when no Qdrant URL is
// configured and in tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"shop-assistant/internal/faq/repository"
	"shop-assistant/pkg/embedding"
)

type collection struct {
	dim     int
	records []repository.Record
	index   map[string]int
}

type implRepository struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

// New creates an empty in-memory repository.
func New() repository.VectorRepository {
	return &implRepository{collections: make(map[string]*collection)}
}

func (r *implRepository) ListCollections(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *implRepository) CollectionExists(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.collections[name]
	return ok, nil
}

func (r *implRepository) CreateCollection(ctx context.Context, name string, dim int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.collections[name]; ok {
		return fmt.Errorf("collection %s already exists", name)
	}
	r.collections[name] = &collection{dim: dim, index: make(map[string]int)}
	return nil
}

func (r *implRepository) DeleteCollection(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.collections, name)
	return nil
}

// Insert upserts records by ID.
func (r *implRepository) Insert(ctx context.Context, name string, records []repository.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collections[name]
	if !ok {
		return fmt.Errorf("%w: %s", repository.ErrCollectionNotFound, name)
	}
	for _, rec := range records {
		if c.dim > 0 && len(rec.Vector) != c.dim {
			return fmt.Errorf("record %s: %w: got %d, want %d", rec.ID, embedding.ErrDimensionMismatch, len(rec.Vector), c.dim)
		}
		rec.Metadata = cloneMetadata(rec.Metadata)
		if i, ok := c.index[rec.ID]; ok {
			c.records[i] = rec
			continue
		}
		c.index[rec.ID] = len(c.records)
		c.records = append(c.records, rec)
	}
	return nil
}

// Query ranks by cosine similarity. Equal scores keep insertion order.
func (r *implRepository) Query(ctx context.Context, name string, vector []float32, limit int) ([]repository.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrCollectionNotFound, name)
	}

	matches := make([]repository.Match, 0, len(c.records))
	for _, rec := range c.records {
		score, err := embedding.CosineSimilarity(vector, rec.Vector)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.ID, err)
		}
		matches = append(matches, repository.Match{
			ID:       rec.ID,
			Document: rec.Document,
			Metadata: cloneMetadata(rec.Metadata),
			Score:    score,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })

	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *implRepository) Count(ctx context.Context, name string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", repository.ErrCollectionNotFound, name)
	}
	return len(c.records), nil
}

func cloneMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
