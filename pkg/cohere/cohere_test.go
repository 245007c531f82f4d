package cohere_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop-assistant/pkg/cohere"
)

func TestEmbed(t *testing.T) {
	var got cohere.EmbedRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embed" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer co-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"invalid api token"}`))
			return
		}
		json.NewDecoder(r.Body).Decode(&got)

		resp := cohere.EmbedResponse{ID: "x"}
		for i := range got.Texts {
			resp.Embeddings = append(resp.Embeddings, []float32{float32(i + 1), 0})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client, err := cohere.New(cohere.Config{APIKey: "co-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		vectors, err := client.Embed(context.Background(), []string{"a", "b"}, cohere.InputTypeSearchDocument)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vectors) != 2 || vectors[1][0] != 2 {
			t.Errorf("unexpected vectors: %v", vectors)
		}
		if got.InputType != cohere.InputTypeSearchDocument {
			t.Errorf("input_type = %q", got.InputType)
		}
		if got.Model != cohere.DefaultModel {
			t.Errorf("model = %q, want %q", got.Model, cohere.DefaultModel)
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		bad, _ := cohere.New(cohere.Config{APIKey: "nope", BaseURL: ts.URL})
		_, err := bad.Embed(context.Background(), []string{"a"}, cohere.InputTypeSearchQuery)
		if err == nil || !strings.Contains(err.Error(), "invalid api token") {
			t.Fatalf("expected auth error, got %v", err)
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		if _, err := cohere.New(cohere.Config{}); err == nil {
			t.Fatal("expected error")
		}
	})
}
