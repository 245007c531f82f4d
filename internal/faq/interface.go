package faq

import "context"

// UseCase defines the FAQ knowledge base: ingestion, retrieval and grounded answering.
type UseCase interface {
	// Ingest loads a Question/Answer CSV corpus into the vector index according to input.Mode.
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)

	// Retrieve returns at most k entries nearest to query, best match first.
	// A non-positive k selects the configured default.
	Retrieve(ctx context.Context, query string, k int) ([]Entry, error)

	// Answer produces a grounded reply for a transcript whose last line is "User: <query>".
	// Generation failures are returned as a readable answer, not as an error.
	Answer(ctx context.Context, conversation string) (string, error)

	// Collection returns the collection that Retrieve currently reads from.
	Collection() string
}
