package conversation

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"shop-assistant/pkg/log"
	"shop-assistant/pkg/metrics"
)

type session struct {
	mu      sync.Mutex
	history *History
}

type implUseCase struct {
	l        log.Logger
	router   Classifier
	answerer Answerer
	opts     Options

	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
}

var _ UseCase = (*implUseCase)(nil)

// New creates a conversation orchestrator. Idle sessions expire after
// opts.SessionTTL; the least recently used session is dropped beyond opts.MaxSessions.
func New(l log.Logger, r Classifier, answerer Answerer, opts Options) *implUseCase {
	if opts.MaxHistory == 0 {
		opts.MaxHistory = DefaultMaxHistory
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}

	onEvict := func(string, *session) { metrics.ActiveSessions.Dec() }
	return &implUseCase{
		l:        l,
		router:   r,
		answerer: answerer,
		opts:     opts,
		sessions: expirable.NewLRU[string, *session](opts.MaxSessions, onEvict, opts.SessionTTL),
	}
}
