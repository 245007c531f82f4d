package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-assistant/config"
	"shop-assistant/internal/faq"
	"shop-assistant/internal/faq/repository"
	"shop-assistant/internal/middleware"
	"shop-assistant/pkg/log"
	"shop-assistant/pkg/response"
)

type fakeUseCase struct {
	entries   []faq.Entry
	err       error
	gotK      int
	gotInput  faq.IngestInput
	ingestOut faq.IngestOutput
}

func (f *fakeUseCase) Ingest(_ context.Context, in faq.IngestInput) (faq.IngestOutput, error) {
	f.gotInput = in
	return f.ingestOut, f.err
}

func (f *fakeUseCase) Retrieve(_ context.Context, _ string, k int) ([]faq.Entry, error) {
	f.gotK = k
	return f.entries, f.err
}

func (f *fakeUseCase) Answer(context.Context, string) (string, error) { return "", nil }

func (f *fakeUseCase) Collection() string { return "faq" }

func setup(uc *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), config.RateLimitConfig{})
	RegisterRoutes(r.Group("/api/v1/faq"), New(log.NewNop(), uc, faq.IngestContentHash), mw)
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSearch(t *testing.T) {
	t.Run("Success Flow", func(t *testing.T) {
		uc := &fakeUseCase{entries: []faq.Entry{
			{ID: "id_3", Question: "What is the return policy?", Answer: "30 days.", Score: 0.91},
		}}
		w, resp := do(setup(uc), http.MethodGet, "/api/v1/faq/search?q=returns&k=1", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, uc.gotK)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "faq", data["collection"])
		entries := data["entries"].([]interface{})
		require.Len(t, entries, 1)
		assert.Equal(t, "30 days.", entries[0].(map[string]interface{})["answer"])
	})

	t.Run("k is clamped", func(t *testing.T) {
		uc := &fakeUseCase{}
		do(setup(uc), http.MethodGet, "/api/v1/faq/search?q=returns&k=500", "")
		assert.Equal(t, maxSearchK, uc.gotK)
	})

	t.Run("Missing query", func(t *testing.T) {
		w, _ := do(setup(&fakeUseCase{}), http.MethodGet, "/api/v1/faq/search", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not ingested", func(t *testing.T) {
		uc := &fakeUseCase{err: fmt.Errorf("query: %w", repository.ErrCollectionNotFound)}
		w, _ := do(setup(uc), http.MethodGet, "/api/v1/faq/search?q=returns", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIngest(t *testing.T) {
	t.Run("Default mode on empty body", func(t *testing.T) {
		uc := &fakeUseCase{ingestOut: faq.IngestOutput{Collection: "faq_0123456789ab", Entries: 12}}
		w, resp := do(setup(uc), http.MethodPost, "/api/v1/faq/ingest", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, faq.IngestContentHash, uc.gotInput.Mode)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "faq_0123456789ab", data["collection"])
		assert.EqualValues(t, 12, data["entries"])
	})

	t.Run("Explicit mode", func(t *testing.T) {
		uc := &fakeUseCase{}
		w, _ := do(setup(uc), http.MethodPost, "/api/v1/faq/ingest", `{"mode":"force"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, faq.IngestForce, uc.gotInput.Mode)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		uc := &fakeUseCase{}
		w, _ := do(setup(uc), http.MethodPost, "/api/v1/faq/ingest", `{"mode":"sometimes"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, uc.gotInput.Mode)
	})

	t.Run("Lock held elsewhere", func(t *testing.T) {
		uc := &fakeUseCase{err: faq.ErrIngestLockTimeout}
		w, _ := do(setup(uc), http.MethodPost, "/api/v1/faq/ingest", "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
