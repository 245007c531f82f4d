package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop-assistant/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	var gotBody map[string]interface{}
	var gotPath string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
			return
		}
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "Refunds take "}, {"text": "5-7 days."}]}, "finishReason": "STOP"}
			],
			"usageMetadata": {"promptTokenCount": 40, "candidatesTokenCount": 6, "totalTokenCount": 46}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "be brief",
			Messages: []gemini.Content{
				{Role: "user", Text: "hi"},
				{Role: "assistant", Text: "hello"},
			},
			Temperature: 0.2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "Refunds take 5-7 days." {
			t.Errorf("unexpected text %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 46 {
			t.Errorf("unexpected usage %+v", resp.Usage)
		}
		if !strings.HasSuffix(gotPath, "/models/"+gemini.DefaultModel+":generateContent") {
			t.Errorf("unexpected path %q", gotPath)
		}
		contents := gotBody["contents"].([]interface{})
		if role := contents[1].(map[string]interface{})["role"]; role != "model" {
			t.Errorf("assistant role should map to model, got %v", role)
		}
		if _, ok := gotBody["system_instruction"]; !ok {
			t.Error("expected system_instruction in body")
		}
	})

	t.Run("Forbidden Error Flow", func(t *testing.T) {
		bad, _ := gemini.New(gemini.Config{APIKey: "nope", APIURL: ts.URL})
		_, err := bad.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Text: "hi"}},
		})
		if err == nil || !strings.Contains(err.Error(), "403") {
			t.Fatalf("expected 403 error, got %v", err)
		}
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "API key not valid" {
			t.Errorf("expected APIError with decoded message, got %#v", err)
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		if _, err := gemini.New(gemini.Config{}); err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestGenerateContent_PromptBlocked(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": [], "promptFeedback": {"blockReason": "SAFETY"}}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Role: "user", Text: "Where is my order?"}},
	})
	if !errors.Is(err, gemini.ErrPromptBlocked) {
		t.Fatalf("expected ErrPromptBlocked, got %v", err)
	}
	if !strings.Contains(err.Error(), "SAFETY") {
		t.Errorf("expected block reason in error, got %v", err)
	}
}
