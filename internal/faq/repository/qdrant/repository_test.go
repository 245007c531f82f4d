package qdrant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-assistant/internal/faq/repository"
	"shop-assistant/internal/faq/repository/qdrant"
	"shop-assistant/pkg/log"
	pkgQdrant "shop-assistant/pkg/qdrant"
	"shop-assistant/pkg/qdrant/qdranttest"
)

func newRepo(t *testing.T) (repository.VectorRepository, *qdranttest.Server) {
	t.Helper()
	srv := qdranttest.NewServer()
	t.Cleanup(srv.Close)
	return qdrant.New(pkgQdrant.NewClient(srv.URL), log.NewNop()), srv
}

func TestQdrantRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Flow", func(t *testing.T) {
		repo, srv := newRepo(t)

		exists, err := repo.CollectionExists(ctx, "faq")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, repo.CreateCollection(ctx, "faq", 2))
		require.NoError(t, repo.Insert(ctx, "faq", []repository.Record{
			{ID: "id_0", Document: "What is the return policy?", Vector: []float32{1, 0}, Metadata: map[string]string{"answer": "30 days."}},
			{ID: "id_1", Document: "How do I track my order?", Vector: []float32{0, 1}, Metadata: map[string]string{"answer": "Use the tracking link."}},
		}))
		assert.Equal(t, 2, srv.PointCount("faq"))

		n, err := repo.Count(ctx, "faq")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		matches, err := repo.Query(ctx, "faq", []float32{0.9, 0.1}, 1)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "id_0", matches[0].ID)
		assert.Equal(t, "What is the return policy?", matches[0].Document)
		assert.Equal(t, "30 days.", matches[0].Metadata["answer"])

		names, err := repo.ListCollections(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"faq"}, names)
	})

	t.Run("Duplicate Documents Keep Distinct IDs", func(t *testing.T) {
		repo, srv := newRepo(t)
		require.NoError(t, repo.CreateCollection(ctx, "faq", 2))
		require.NoError(t, repo.Insert(ctx, "faq", []repository.Record{
			{ID: "id_0", Document: "same", Vector: []float32{1, 0}},
			{ID: "id_1", Document: "same", Vector: []float32{1, 0}},
		}))
		assert.Equal(t, 2, srv.PointCount("faq"))
	})

	t.Run("Empty Collection", func(t *testing.T) {
		repo, _ := newRepo(t)
		require.NoError(t, repo.CreateCollection(ctx, "faq", 2))

		matches, err := repo.Query(ctx, "faq", []float32{1, 0}, 2)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("Missing Collection", func(t *testing.T) {
		repo, _ := newRepo(t)
		_, err := repo.Query(ctx, "missing", []float32{1, 0}, 2)
		assert.ErrorIs(t, err, repository.ErrCollectionNotFound)
		assert.NoError(t, repo.DeleteCollection(ctx, "missing"))
	})

	t.Run("Delete Collection", func(t *testing.T) {
		repo, srv := newRepo(t)
		require.NoError(t, repo.CreateCollection(ctx, "faq", 2))
		require.NoError(t, repo.DeleteCollection(ctx, "faq"))
		assert.Equal(t, -1, srv.PointCount("faq"))
	})

	t.Run("Invalid Size", func(t *testing.T) {
		repo, _ := newRepo(t)
		assert.Error(t, repo.CreateCollection(ctx, "faq", 0))
	})

	t.Run("Server Failure", func(t *testing.T) {
		repo, srv := newRepo(t)
		require.NoError(t, repo.CreateCollection(ctx, "faq", 2))
		srv.SetFail(true)

		_, err := repo.CollectionExists(ctx, "faq")
		assert.Error(t, err)
		_, err = repo.Query(ctx, "faq", []float32{1, 0}, 2)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrCollectionNotFound)
	})
}
