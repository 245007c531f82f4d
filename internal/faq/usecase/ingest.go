package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gofrs/flock"

	"shop-assistant/internal/faq"
	"shop-assistant/internal/faq/repository"
	"shop-assistant/pkg/embedding"
	"shop-assistant/pkg/metrics"
)

// Ingest loads the FAQ corpus into the vector index.
//
// existence skips when the base collection exists. content_hash targets
// <base>_<hash> so a changed corpus lands in a new collection, and removes
// older hash versions afterwards. force drops and rebuilds the base collection.
// All modes hold a file lock per collection for the duration of the write.
func (uc *implUseCase) Ingest(ctx context.Context, input faq.IngestInput) (faq.IngestOutput, error) {
	mode := input.Mode
	if mode == "" {
		mode = uc.opts.Mode
	}
	if !mode.Valid() {
		return faq.IngestOutput{}, fmt.Errorf("%w: %q", faq.ErrInvalidIngestMode, mode)
	}
	source := input.Source
	if source == "" {
		source = uc.opts.Source
	}

	c, err := loadCorpus(source)
	if err != nil {
		metrics.FaqIngestionsTotal.WithLabelValues("failed").Inc()
		uc.l.Errorf(ctx, "internal.faq.usecase.Ingest: load %s: %v", source, err)
		return faq.IngestOutput{}, err
	}

	collection := uc.opts.Collection
	if mode == faq.IngestContentHash {
		collection = versionedName(uc.opts.Collection, c.digest)
	}
	out := faq.IngestOutput{Collection: collection, Files: c.files}

	unlock, err := uc.lock(ctx, collection)
	if err != nil {
		metrics.FaqIngestionsTotal.WithLabelValues("failed").Inc()
		return faq.IngestOutput{}, err
	}
	defer unlock()

	if mode == faq.IngestForce {
		if err := uc.repo.DeleteCollection(ctx, collection); err != nil {
			metrics.FaqIngestionsTotal.WithLabelValues("failed").Inc()
			return faq.IngestOutput{}, err
		}
	} else {
		exists, err := uc.repo.CollectionExists(ctx, collection)
		if err != nil {
			metrics.FaqIngestionsTotal.WithLabelValues("failed").Inc()
			return faq.IngestOutput{}, err
		}
		if exists {
			uc.l.Infof(ctx, "Collection %s already exists. Skipping ingestion.", collection)
			uc.setCollection(collection)
			metrics.FaqIngestionsTotal.WithLabelValues("skipped").Inc()
			out.Skipped = true
			if mode == faq.IngestContentHash {
				out.Pruned = uc.pruneVersions(ctx, collection)
			}
			return out, nil
		}
	}

	n, err := uc.write(ctx, collection, c.rows)
	if err != nil {
		metrics.FaqIngestionsTotal.WithLabelValues("failed").Inc()
		uc.l.Errorf(ctx, "internal.faq.usecase.Ingest: write %s: %v", collection, err)
		return faq.IngestOutput{}, err
	}
	out.Entries = n
	uc.setCollection(collection)
	metrics.FaqIngestionsTotal.WithLabelValues("ingested").Inc()
	uc.l.Infof(ctx, "FAQ data ingested successfully into collection %s (%d entries, mode=%s).", collection, n, mode)

	if mode == faq.IngestContentHash {
		out.Pruned = uc.pruneVersions(ctx, collection)
	}
	return out, nil
}

// write embeds every question in document mode and inserts one record per row
// with id "id_<row>".
func (uc *implUseCase) write(ctx context.Context, collection string, rows []faqRow) (int, error) {
	questions := make([]string, len(rows))
	for i, row := range rows {
		questions[i] = row.question
	}

	vectors, err := uc.embedder.Embed(ctx, questions, embedding.ModeDocument)
	if err != nil {
		return 0, fmt.Errorf("embed questions: %w", err)
	}
	if len(vectors) != len(rows) {
		return 0, fmt.Errorf("%w: got %d, want %d", embedding.ErrUnexpectedVectorLen, len(vectors), len(rows))
	}

	if err := uc.repo.CreateCollection(ctx, collection, len(vectors[0])); err != nil {
		return 0, err
	}

	records := make([]repository.Record, len(rows))
	for i, row := range rows {
		// A blank answer cell is stored without the key, so Retrieve reports the
		// entry as malformed when it is returned.
		metadata := map[string]string{}
		if row.answer != "" {
			metadata[faq.MetadataAnswer] = row.answer
		}
		records[i] = repository.Record{
			ID:       fmt.Sprintf("id_%d", i),
			Document: row.question,
			Vector:   vectors[i],
			Metadata: metadata,
		}
	}
	if err := uc.repo.Insert(ctx, collection, records); err != nil {
		// A half-written collection would be skipped by the next existence check.
		if derr := uc.repo.DeleteCollection(ctx, collection); derr != nil {
			uc.l.Warnf(ctx, "internal.faq.usecase.write: cleanup %s: %v", collection, derr)
		}
		return 0, err
	}
	return len(records), nil
}

// lock takes <LockDir>/<collection>.lock, polling until LockWait elapses.
func (uc *implUseCase) lock(ctx context.Context, collection string) (func(), error) {
	if uc.opts.LockDir == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(uc.opts.LockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}

	lockPath := filepath.Join(uc.opts.LockDir, collection+".lock")
	l := flock.New(lockPath)
	deadline := time.Now().Add(uc.opts.LockWait)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire ingestion lock %s: %w", lockPath, err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", faq.ErrIngestLockTimeout, lockPath)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
}

// pruneVersions drops <base>_<hash> collections other than keep. Failures are
// logged and do not fail the ingestion.
func (uc *implUseCase) pruneVersions(ctx context.Context, keep string) []string {
	names, err := uc.repo.ListCollections(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "internal.faq.usecase.pruneVersions: list collections: %v", err)
		return nil
	}

	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(uc.opts.Collection) + fmt.Sprintf("_[0-9a-f]{%d}$", contentHashChars))
	var pruned []string
	for _, name := range names {
		if name == keep || !pattern.MatchString(name) {
			continue
		}
		if err := uc.repo.DeleteCollection(ctx, name); err != nil {
			uc.l.Warnf(ctx, "internal.faq.usecase.pruneVersions: delete %s: %v", name, err)
			continue
		}
		uc.l.Infof(ctx, "internal.faq.usecase.pruneVersions: removed stale collection %s", name)
		pruned = append(pruned, name)
	}
	return pruned
}

func versionedName(base, digest string) string {
	return base + "_" + digest[:contentHashChars]
}
