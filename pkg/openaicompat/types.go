package openaicompat

import (
	"fmt"
	"net/http"
)

// Config holds client configuration. Vendor selects a Preset that fills
// BaseURL and Model when they are empty.
type Config struct {
	Vendor     string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s: APIKey is required", c.vendorName())
	}
	if p, ok := Presets[c.Vendor]; ok {
		if c.BaseURL == "" {
			c.BaseURL = p.BaseURL
		}
		if c.Model == "" {
			c.Model = p.Model
		}
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%s: BaseURL is required", c.vendorName())
	}
	if c.Model == "" {
		return fmt.Errorf("%s: Model is required", c.vendorName())
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

func (c *Config) vendorName() string {
	if c.Vendor == "" {
		return "openaicompat"
	}
	return c.Vendor
}

type clientImpl struct {
	vendor     string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request represents a chat completion request
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is one chat message. Role is "system", "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response represents a chat completion response
type Response struct {
	Text         string
	FinishReason string
	Model        string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
