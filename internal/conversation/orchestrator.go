package conversation

import (
	"context"
	"fmt"
	"strings"

	"shop-assistant/internal/model"
	"shop-assistant/internal/router"
	"shop-assistant/pkg/metrics"
)

// Handle classifies query and answers it according to the winning route.
// faq queries are answered from the session transcript; other routes get a
// fixed placeholder. Both turns are recorded only after dispatch succeeds.
func (uc *implUseCase) Handle(ctx context.Context, sessionID, query string) (Reply, error) {
	if sessionID == "" {
		return Reply{}, ErrEmptySessionID
	}
	query = singleLine(query)
	if query == "" {
		return Reply{}, ErrEmptyQuery
	}

	s := uc.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := uc.router.Classify(ctx, query, uc.opts.Threshold)
	if err != nil {
		uc.l.Errorf(ctx, "%s: session=%s classify: %v", LogPrefixHandle, sessionID, err)
		return Reply{}, fmt.Errorf("%s: %w", LogPrefixHandle, err)
	}

	var answer string
	switch result.Route {
	case router.RouteFAQ:
		conversation := s.history.Transcript() + "\n" + model.Message{Role: model.RoleUser, Content: query}.TranscriptLine()
		answer, err = uc.answerer.Answer(ctx, conversation)
		if err != nil {
			uc.l.Errorf(ctx, "%s: session=%s answer: %v", LogPrefixHandle, sessionID, err)
			return Reply{}, fmt.Errorf("%s: %w", LogPrefixHandle, err)
		}
	case router.RouteSQL:
		answer = SQLNotImplemented
	default:
		answer = fmt.Sprintf(RouteNotImplementedFm, result.Route)
	}

	s.history.Append(model.Message{Role: model.RoleUser, Content: query})
	s.history.Append(model.Message{Role: model.RoleAssistant, Content: answer})

	uc.l.Infof(ctx, "%s: session=%s route=%s score=%.4f", LogPrefixHandle, sessionID, result.Route, result.Score)
	return Reply{Route: result.Route, Score: result.Score, Answer: answer}, nil
}

// History returns the retained messages for sessionID, oldest first.
func (uc *implUseCase) History(ctx context.Context, sessionID string) ([]model.Message, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionUnknown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Messages(), nil
}

// Reset drops the session.
func (uc *implUseCase) Reset(ctx context.Context, sessionID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.sessions.Remove(sessionID)
}

// session returns the session for id, creating it on first use. Every call
// refreshes the session's expiry.
func (uc *implUseCase) session(id string) *session {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions.Get(id)
	if !ok {
		s = &session{history: NewHistory(uc.opts.MaxHistory)}
		metrics.ActiveSessions.Inc()
	}
	uc.sessions.Add(id, s)
	return s
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// singleLine folds line breaks so a query always occupies one transcript line.
func singleLine(query string) string {
	return strings.TrimSpace(lineBreaks.Replace(query))
}
