package repository

import "context"

// VectorRepository stores embedded documents in named collections and runs
// nearest-neighbour queries against them.
type VectorRepository interface {
	ListCollections(ctx context.Context) ([]string, error)
	CollectionExists(ctx context.Context, name string) (bool, error)
	// CreateCollection creates a cosine collection for vectors of length dim.
	CreateCollection(ctx context.Context, name string, dim int) error
	// DeleteCollection drops name. A missing collection is not an error.
	DeleteCollection(ctx context.Context, name string) error
	Insert(ctx context.Context, collection string, records []Record) error
	// Query returns at most limit matches, most similar first.
	Query(ctx context.Context, collection string, vector []float32, limit int) ([]Match, error)
	Count(ctx context.Context, collection string) (int, error)
}
