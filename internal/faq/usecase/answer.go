package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shop-assistant/internal/faq"
	"shop-assistant/pkg/llmprovider"
	"shop-assistant/pkg/metrics"
)

const answerPrompt = `You are a helpful e-commerce assistant.
Answer the user's question in a natural, conversational way using only the FAQ context below.
When the user asks a follow-up such as "tell me more about that", work out what "that" refers to
from the conversation so far.

If the context does not contain the answer, reply with "%s"

---
Conversation so far:
%s

Relevant FAQ context:
%s

Your helpful answer:
`

// Answer extracts the latest user query from conversation, retrieves FAQ
// context for it and asks the language model for a grounded reply.
// Retrieval errors are returned; generation errors become the reply text.
func (uc *implUseCase) Answer(ctx context.Context, conversation string) (string, error) {
	start := time.Now()
	defer func() { metrics.AnswerDuration.Observe(time.Since(start).Seconds()) }()

	query, err := latestUserQuery(conversation)
	if err != nil {
		return "", err
	}

	entries, err := uc.Retrieve(ctx, query, faq.DefaultTopK)
	if err != nil {
		return "", err
	}

	answers := make([]string, len(entries))
	for i, e := range entries {
		answers[i] = e.Answer
	}
	prompt := buildPrompt(conversation, strings.Join(answers, " "))

	text, err := uc.generate(ctx, prompt)
	if err != nil {
		metrics.AnswerGenerationsTotal.WithLabelValues("failed").Inc()
		uc.l.Warnf(ctx, "internal.faq.usecase.Answer: generation failed: %v", err)
		return faq.GenerationErrorPrefix + err.Error(), nil
	}

	metrics.AnswerGenerationsTotal.WithLabelValues("success").Inc()
	return text, nil
}

func (uc *implUseCase) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, llmprovider.NewTextRequest(prompt, uc.opts.Temperature, uc.opts.MaxTokens))
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", faq.ErrEmptyAnswer
	}
	text := strings.TrimSpace(resp.Content.Text())
	if text == "" {
		return "", faq.ErrEmptyAnswer
	}
	return text, nil
}

// latestUserQuery returns the text after "User:" on the last non-blank line.
func latestUserQuery(conversation string) (string, error) {
	lines := strings.Split(strings.TrimSpace(conversation), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if !strings.HasPrefix(last, faq.UserPrefix) {
		return "", faq.ErrMissingUserTurn
	}
	return strings.TrimSpace(strings.TrimPrefix(last, faq.UserPrefix)), nil
}

func buildPrompt(conversation, context string) string {
	return fmt.Sprintf(answerPrompt, faq.FallbackAnswer, conversation, context)
}
