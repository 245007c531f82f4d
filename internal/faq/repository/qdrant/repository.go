package qdrant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"shop-assistant/internal/faq/repository"
	pkgQdrant "shop-assistant/pkg/qdrant"
)

func (r *implRepository) ListCollections(ctx context.Context) ([]string, error) {
	names, err := r.client.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

func (r *implRepository) CollectionExists(ctx context.Context, name string) (bool, error) {
	ok, err := r.client.CollectionExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check collection %s: %w", name, err)
	}
	return ok, nil
}

func (r *implRepository) CreateCollection(ctx context.Context, name string, dim int) error {
	if dim <= 0 {
		return fmt.Errorf("invalid vector size %d for collection %s", dim, name)
	}
	err := r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: name,
		Vectors: pkgQdrant.VectorConfig{
			Size:     dim,
			Distance: pkgQdrant.DistanceCosine,
		},
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to create collection %s: %v", name, err)
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	r.l.Infof(ctx, "qdrant repository: created collection %s (size=%d)", name, dim)
	return nil
}

func (r *implRepository) DeleteCollection(ctx context.Context, name string) error {
	if err := r.client.DeleteCollection(ctx, name); err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", name, err)
	}
	return nil
}

func (r *implRepository) Insert(ctx context.Context, collection string, records []repository.Record) error {
	for start := 0; start < len(records); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(records))

		points := make([]pkgQdrant.Point, 0, end-start)
		for _, rec := range records[start:end] {
			metadata := make(map[string]interface{}, len(rec.Metadata))
			for k, v := range rec.Metadata {
				metadata[k] = v
			}
			points = append(points, pkgQdrant.Point{
				ID:     recordIDToUUID(rec.ID),
				Vector: rec.Vector,
				Payload: map[string]interface{}{
					payloadRecordID: rec.ID,
					payloadDocument: rec.Document,
					payloadMetadata: metadata,
				},
			})
		}

		if err := r.client.UpsertPoints(ctx, collection, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
			r.l.Errorf(ctx, "qdrant repository: failed to upsert %d points into %s: %v", len(points), collection, err)
			return wrapNotFound(fmt.Errorf("failed to upsert points: %w", err))
		}
	}

	r.l.Debugf(ctx, "qdrant repository: inserted %d records into %s", len(records), collection)
	return nil
}

func (r *implRepository) Query(ctx context.Context, collection string, vector []float32, limit int) ([]repository.Match, error) {
	resp, err := r.client.SearchPoints(ctx, collection, pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		return nil, wrapNotFound(fmt.Errorf("failed to search %s: %w", collection, err))
	}

	matches := make([]repository.Match, 0, len(resp.Result))
	for _, scored := range resp.Result {
		match := repository.Match{
			Score:    scored.Score,
			Metadata: map[string]string{},
		}
		if id, ok := scored.Payload[payloadRecordID].(string); ok {
			match.ID = id
		} else {
			r.l.Warnf(ctx, "qdrant repository: record_id missing in payload for point %v", scored.ID)
		}
		if doc, ok := scored.Payload[payloadDocument].(string); ok {
			match.Document = doc
		}
		if md, ok := scored.Payload[payloadMetadata].(map[string]interface{}); ok {
			for k, v := range md {
				if s, ok := v.(string); ok {
					match.Metadata[k] = s
				}
			}
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func (r *implRepository) Count(ctx context.Context, collection string) (int, error) {
	n, err := r.client.CountPoints(ctx, collection)
	if err != nil {
		return 0, wrapNotFound(fmt.Errorf("failed to count %s: %w", collection, err))
	}
	return n, nil
}

// recordIDToUUID maps a record id such as "id_3" to a deterministic UUID v5,
// since Qdrant only accepts UUIDs or unsigned integers as point ids.
func recordIDToUUID(id string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(id)).String()
}

func wrapNotFound(err error) error {
	if errors.Is(err, pkgQdrant.ErrNotFound) {
		return fmt.Errorf("%w: %w", repository.ErrCollectionNotFound, err)
	}
	return err
}
