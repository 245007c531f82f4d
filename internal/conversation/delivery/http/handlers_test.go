package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-assistant/config"
	"shop-assistant/internal/conversation"
	"shop-assistant/internal/middleware"
	"shop-assistant/internal/model"
	"shop-assistant/pkg/log"
	"shop-assistant/pkg/response"
)

type fakeUseCase struct {
	reply    conversation.Reply
	err      error
	sessions map[string][]model.Message
	handled  []string
}

func (f *fakeUseCase) Handle(_ context.Context, sessionID, query string) (conversation.Reply, error) {
	f.handled = append(f.handled, sessionID+"|"+query)
	if f.err != nil {
		return conversation.Reply{}, f.err
	}
	f.sessions[sessionID] = append(f.sessions[sessionID],
		model.Message{Role: model.RoleUser, Content: query},
		model.Message{Role: model.RoleAssistant, Content: f.reply.Answer},
	)
	return f.reply, nil
}

func (f *fakeUseCase) History(_ context.Context, sessionID string) ([]model.Message, error) {
	m, ok := f.sessions[sessionID]
	if !ok {
		return nil, conversation.ErrSessionUnknown
	}
	return m, nil
}

func (f *fakeUseCase) Reset(_ context.Context, sessionID string) bool {
	_, ok := f.sessions[sessionID]
	delete(f.sessions, sessionID)
	return ok
}

func setup(uc *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), config.RateLimitConfig{})
	RegisterRoutes(r.Group("/api/v1/chat"), New(log.NewNop(), uc), mw)
	return r
}

func do(r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, response.Resp) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSendMessage(t *testing.T) {
	t.Run("Success Flow", func(t *testing.T) {
		uc := &fakeUseCase{
			reply:    conversation.Reply{Route: "faq", Score: 0.82, Answer: "Returns are accepted within 30 days."},
			sessions: map[string][]model.Message{},
		}
		r := setup(uc)

		w, resp := do(r, http.MethodPost, "/api/v1/chat/messages", gin.H{"session_id": "s1", "text": "return policy?"})

		require.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "s1", data["session_id"])
		assert.Equal(t, "faq", data["route"])
		assert.Equal(t, "Returns are accepted within 30 days.", data["answer"])
		assert.Equal(t, []string{"s1|return policy?"}, uc.handled)
	})

	t.Run("Missing session id", func(t *testing.T) {
		uc := &fakeUseCase{sessions: map[string][]model.Message{}}
		w, _ := do(setup(uc), http.MethodPost, "/api/v1/chat/messages", gin.H{"text": "hi"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, uc.handled)
	})

	t.Run("Blank text", func(t *testing.T) {
		uc := &fakeUseCase{sessions: map[string][]model.Message{}}
		w, resp := do(setup(uc), http.MethodPost, "/api/v1/chat/messages", gin.H{"session_id": "s1", "text": "   "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, conversation.ErrEmptyQuery.Error(), resp.Message)
	})

	t.Run("Classification failure", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("embedding provider down"), sessions: map[string][]model.Message{}}
		w, resp := do(setup(uc), http.MethodPost, "/api/v1/chat/messages", gin.H{"session_id": "s1", "text": "hi"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, response.DefaultErrorMessage, resp.Message)
	})
}

func TestHistoryAndReset(t *testing.T) {
	uc := &fakeUseCase{
		reply:    conversation.Reply{Route: "sql", Answer: conversation.SQLNotImplemented},
		sessions: map[string][]model.Message{},
	}
	r := setup(uc)

	do(r, http.MethodPost, "/api/v1/chat/messages", gin.H{"session_id": "s1", "text": "my orders"})

	w, resp := do(r, http.MethodGet, "/api/v1/chat/sessions/s1/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	messages := resp.Data.(map[string]interface{})["messages"].([]interface{})
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].(map[string]interface{})["role"])
	assert.Equal(t, conversation.SQLNotImplemented, messages[1].(map[string]interface{})["content"])

	w, _ = do(r, http.MethodDelete, "/api/v1/chat/sessions/s1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(r, http.MethodGet, "/api/v1/chat/sessions/s1/history", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(r, http.MethodDelete, "/api/v1/chat/sessions/s1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
