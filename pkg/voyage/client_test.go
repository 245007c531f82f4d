package voyage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop-assistant/pkg/voyage"
)

func TestVoyageClient(t *testing.T) {
	var lastInputType string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Provided API key is invalid."}`))
			return
		}

		var req voyage.EmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		lastInputType = string(req.InputType)

		if len(req.Input) > 0 && req.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// Reply out of order to make sure the client re-sorts by index.
		resp := voyage.EmbedResponse{Model: req.Model}
		for i := len(req.Input) - 1; i >= 0; i-- {
			resp.Data = append(resp.Data, voyage.EmbeddingData{
				Embedding: []float32{float32(i), 0.5},
				Index:     i,
			})
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client, _ := voyage.New("test-voyage-key")
	client.WithBaseURL(ts.URL).WithModel("custom-model")

	t.Run("Success Flow", func(t *testing.T) {
		emb, err := client.Embed(context.Background(), []string{"first", "second"}, voyage.InputTypeDocument)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != 2 {
			t.Fatalf("expected 2 embeddings, got %d", len(emb))
		}
		if emb[0][0] != 0 || emb[1][0] != 1 {
			t.Errorf("embeddings not in input order: %v", emb)
		}
		if lastInputType != "document" {
			t.Errorf("expected input_type document, got %q", lastInputType)
		}
	})

	t.Run("Query Input Type", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), []string{"q"}, voyage.InputTypeQuery); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastInputType != "query" {
			t.Errorf("expected input_type query, got %q", lastInputType)
		}
	})

	t.Run("Batching", func(t *testing.T) {
		texts := make([]string, voyage.MaxBatchSize+3)
		for i := range texts {
			texts[i] = "t"
		}
		emb, err := client.Embed(context.Background(), texts, voyage.InputTypeDocument)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != len(texts) {
			t.Fatalf("expected %d embeddings, got %d", len(texts), len(emb))
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), nil, voyage.InputTypeQuery); err == nil {
			t.Fatal("expected error for empty input")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Embed(context.Background(), []string{"cause_500"}, voyage.InputTypeQuery)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := voyage.New("bad-key")
		badClient.WithBaseURL(ts.URL)
		_, err := badClient.Embed(context.Background(), []string{"Hello world"}, voyage.InputTypeQuery)
		if err == nil || !strings.Contains(err.Error(), "401") {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		if _, err := voyage.New(""); err == nil {
			t.Fatal("expected error for empty API key")
		}
	})
}
