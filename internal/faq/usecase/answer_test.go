package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-assistant/internal/faq"
	"shop-assistant/pkg/embedding"
	"shop-assistant/pkg/llmprovider"
)

func ingested(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t, Options{})
	_, err := f.uc.Ingest(context.Background(), faq.IngestInput{})
	require.NoError(t, err)
	return f
}

func lastPrompt(t *testing.T, g *fakeGenerator) string {
	t.Helper()
	require.NotEmpty(t, g.requests)
	req := g.requests[len(g.requests)-1]
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llmprovider.RoleUser, req.Messages[0].Role)
	return req.Messages[0].Text()
}

func TestAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Flow", func(t *testing.T) {
		f := ingested(t)
		conversation := "User: hi\nAssistant: Hello! How can I help?\nUser: Can I return a product?"

		got, err := f.uc.Answer(ctx, conversation)
		require.NoError(t, err)
		assert.Equal(t, "Returns are accepted within 30 days.", got)

		calls := f.provider.Calls()
		last := calls[len(calls)-1]
		assert.Equal(t, embedding.ModeQuery, last.Mode)
		assert.Equal(t, []string{"Can I return a product?"}, last.Texts)

		prompt := lastPrompt(t, f.gen)
		assert.Contains(t, prompt, faq.FallbackAnswer)
		assert.Contains(t, prompt, conversation)
		assert.Contains(t, prompt, "30 days. Use the tracking link in your email.")

		persona := strings.Index(prompt, "e-commerce assistant")
		transcript := strings.Index(prompt, conversation)
		ctxIdx := strings.Index(prompt, "30 days.")
		assert.True(t, persona < transcript && transcript < ctxIdx, "prompt sections out of order")
	})

	t.Run("Single Generation Attempt", func(t *testing.T) {
		f := ingested(t)
		_, err := f.uc.Answer(ctx, "User: Can I return a product?")
		require.NoError(t, err)
		assert.Len(t, f.gen.requests, 1)
	})

	t.Run("Generation Failure Is Fail-Soft", func(t *testing.T) {
		f := ingested(t)
		f.gen.resp = nil
		f.gen.err = errors.New("quota exceeded")

		got, err := f.uc.Answer(ctx, "User: Can I return a product?")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "An error occurred while generating the answer:"))
		assert.Equal(t, "An error occurred while generating the answer: quota exceeded", got)
	})

	t.Run("Empty Completion Is Fail-Soft", func(t *testing.T) {
		f := ingested(t)
		f.gen.resp = textResponse("   ")

		got, err := f.uc.Answer(ctx, "User: Can I return a product?")
		require.NoError(t, err)
		assert.Equal(t, faq.GenerationErrorPrefix+faq.ErrEmptyAnswer.Error(), got)
	})

	t.Run("Retrieval Failure Propagates", func(t *testing.T) {
		f := ingested(t)
		boom := errors.New("vector index unavailable")
		f.provider.Err = boom

		got, err := f.uc.Answer(ctx, "User: Can I return a product?")
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, got)
		assert.Empty(t, f.gen.requests)
	})

	t.Run("Empty Context", func(t *testing.T) {
		f := newFixture(t, Options{})
		require.NoError(t, f.repo.CreateCollection(ctx, "faq", 3))

		_, err := f.uc.Answer(ctx, "User: Can I return a product?")
		require.NoError(t, err)
		assert.Contains(t, lastPrompt(t, f.gen), "Relevant FAQ context:\n\n")
	})

	t.Run("Missing User Turn", func(t *testing.T) {
		f := ingested(t)

		for _, conv := range []string{"", "Assistant: hello", "User: hi\nAssistant: hello"} {
			_, err := f.uc.Answer(ctx, conv)
			assert.ErrorIs(t, err, faq.ErrMissingUserTurn, conv)
		}
		assert.Empty(t, f.gen.requests)
	})

	t.Run("Trailing Blank Lines", func(t *testing.T) {
		f := ingested(t)
		_, err := f.uc.Answer(ctx, "\nUser:   Can I return a product?  \n\n")
		require.NoError(t, err)

		calls := f.provider.Calls()
		assert.Equal(t, []string{"Can I return a product?"}, calls[len(calls)-1].Texts)
	})
}

func TestLatestUserQuery(t *testing.T) {
	tests := []struct {
		conversation string
		want         string
		wantErr      bool
	}{
		{conversation: "User: hello", want: "hello"},
		{conversation: "User:hello", want: "hello"},
		{conversation: "\nUser: where is my order?", want: "where is my order?"},
		{conversation: "User: a\nAssistant: b\nUser: c", want: "c"},
		{conversation: "User: a\nAssistant: b", wantErr: true},
		{conversation: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := latestUserQuery(tt.conversation)
		if tt.wantErr {
			assert.ErrorIs(t, err, faq.ErrMissingUserTurn)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
