package qdrant

import (
	"shop-assistant/internal/faq/repository"
	pkgLog "shop-assistant/pkg/log"
	pkgQdrant "shop-assistant/pkg/qdrant"
)

// upsertBatchSize bounds the number of points per upsert request.
const upsertBatchSize = 256

// Payload keys.
const (
	payloadRecordID = "record_id"
	payloadDocument = "document"
	payloadMetadata = "metadata"
)

type implRepository struct {
	client *pkgQdrant.Client
	l      pkgLog.Logger
}

// New creates a Qdrant-backed VectorRepository.
func New(client *pkgQdrant.Client, l pkgLog.Logger) repository.VectorRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
