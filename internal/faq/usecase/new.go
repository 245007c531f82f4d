package usecase

import (
	"context"
	"sync"
	"time"

	"shop-assistant/internal/faq"
	"shop-assistant/internal/faq/repository"
	"shop-assistant/pkg/embedding"
	"shop-assistant/pkg/llmprovider"
	pkgLog "shop-assistant/pkg/log"
)

const (
	defaultLockWait  = 2 * time.Minute
	lockRetryDelay   = 200 * time.Millisecond
	contentHashChars = 12
)

// Generator produces text from a prompt. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.VectorRepository
	embedder embedding.Provider
	llm      Generator
	opts     Options

	mu         sync.RWMutex
	collection string
}

var _ faq.UseCase = (*implUseCase)(nil)

// New creates a new faq UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.VectorRepository,
	embedder embedding.Provider,
	llm Generator,
	opts Options,
) *implUseCase {
	if opts.Collection == "" {
		opts.Collection = faq.DefaultCollection
	}
	if opts.Source == "" {
		opts.Source = faq.DefaultSource
	}
	if opts.Mode == "" {
		opts.Mode = faq.IngestExistence
	}
	if opts.LockWait <= 0 {
		opts.LockWait = defaultLockWait
	}
	if opts.TopK <= 0 {
		opts.TopK = faq.DefaultTopK
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		embedder:   embedder,
		llm:        llm,
		opts:       opts,
		collection: opts.Collection,
	}
}

// Collection returns the collection Retrieve reads from.
func (uc *implUseCase) Collection() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.collection
}

func (uc *implUseCase) setCollection(name string) {
	uc.mu.Lock()
	uc.collection = name
	uc.mu.Unlock()
}
