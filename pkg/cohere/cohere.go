package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type cohereImpl struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func (c *cohereImpl) Model() string {
	return c.model
}

// Embed returns one vector per text, in input order.
func (c *cohereImpl) Embed(ctx context.Context, texts []string, inputType InputType) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("cohere: no texts provided")
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += MaxBatchSize {
		end := min(start+MaxBatchSize, len(texts))
		vectors, err := c.embedBatch(ctx, texts[start:end], inputType)
		if err != nil {
			return nil, err
		}
		out = append(out, vectors...)
	}
	return out, nil
}

func (c *cohereImpl) embedBatch(ctx context.Context, texts []string, inputType InputType) ([][]float32, error) {
	body, err := json.Marshal(EmbedRequest{
		Texts:     texts,
		Model:     c.model,
		InputType: inputType,
		Truncate:  "END",
	})
	if err != nil {
		return nil, fmt.Errorf("cohere: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embed", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("cohere: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("cohere: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("cohere: API error %d: %s", resp.StatusCode, errResp.Message)
		}
		return nil, fmt.Errorf("cohere: API error %d: %s", resp.StatusCode, string(raw))
	}

	var parsed EmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("cohere: failed to decode response: %w", err)
	}
	if len(parsed.Embeddings) != len(texts) {
		return nil, fmt.Errorf("cohere: expected %d embeddings, got %d", len(texts), len(parsed.Embeddings))
	}

	return parsed.Embeddings, nil
}
