package llmprovider

import (
	"context"

	"shop-assistant/pkg/gemini"
	"shop-assistant/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = req.SystemInstruction.Text()
	}
	for _, msg := range req.Messages {
		geminiReq.Messages = append(geminiReq.Messages, gemini.Content{Role: msg.Role, Text: msg.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      textMessage(resp.Text),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string { return "gemini" }

// Model returns model name
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// OpenAICompatAdapter adapts pkg/openaicompat (groq, deepseek, qwen) to the Provider interface
type OpenAICompatAdapter struct {
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates a new adapter for an OpenAI-compatible vendor
func NewOpenAICompatAdapter(client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &openaicompat.Request{
		Messages:    make([]openaicompat.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		chatReq.Messages = append(chatReq.Messages, openaicompat.Message{
			Role:    RoleSystem,
			Content: req.SystemInstruction.Text(),
		})
	}
	for _, msg := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, openaicompat.Message{Role: msg.Role, Content: msg.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, chatReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      textMessage(resp.Text),
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the vendor name
func (a *OpenAICompatAdapter) Name() string { return a.client.Vendor() }

// Model returns the model name
func (a *OpenAICompatAdapter) Model() string { return a.client.Model() }

func textMessage(text string) Message {
	msg := Message{Role: RoleAssistant}
	if text != "" {
		msg.Parts = []Part{{Text: text}}
	}
	return msg
}
