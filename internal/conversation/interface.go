package conversation

import (
	"context"

	"shop-assistant/internal/faq"
	"shop-assistant/internal/model"
	"shop-assistant/internal/router"
)

// UseCase runs one chat session per session id.
type UseCase interface {
	// Handle classifies query, dispatches it by route and records both turns.
	Handle(ctx context.Context, sessionID, query string) (Reply, error)

	// History returns the retained messages of a session, oldest first.
	History(ctx context.Context, sessionID string) ([]model.Message, error)

	// Reset forgets a session. It reports whether the session existed.
	Reset(ctx context.Context, sessionID string) bool
}

// Classifier is the subset of router.Router used here.
type Classifier interface {
	Classify(ctx context.Context, query string, threshold float64) (router.Result, error)
}

// Answerer is the subset of faq.UseCase used here.
type Answerer interface {
	Answer(ctx context.Context, conversation string) (string, error)
}

var (
	_ Classifier = (router.Router)(nil)
	_ Answerer   = (faq.UseCase)(nil)
)
