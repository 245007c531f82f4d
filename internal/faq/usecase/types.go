package usecase

import (
	"time"

	"shop-assistant/internal/faq"
)

// Options configures the FAQ usecase. Zero values select defaults.
type Options struct {
	Collection  string         // base collection name
	Source      string         // default ingestion source
	Mode        faq.IngestMode // default ingestion mode
	LockDir     string         // directory for cross-process ingestion locks; empty disables locking
	LockWait    time.Duration  // how long Ingest waits for the lock
	TopK        int            // default k for Retrieve
	Temperature float64
	MaxTokens   int
}

// faqRow is one parsed CSV row.
type faqRow struct {
	question string
	answer   string
}

// corpus is the decoded content of every matched source file.
type corpus struct {
	files  []string
	rows   []faqRow
	digest string // hex SHA-256 of the decoded bytes, files in sorted order
}
