package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-assistant/internal/conversation"
	"shop-assistant/internal/model"
)

type fakeChat struct {
	reply  conversation.Reply
	err    error
	resets int
}

func (f *fakeChat) Handle(context.Context, string, string) (conversation.Reply, error) {
	return f.reply, f.err
}

func (f *fakeChat) Reset(context.Context, string) bool {
	f.resets++
	return true
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModel_SendAndReply(t *testing.T) {
	chat := &fakeChat{reply: conversation.Reply{Route: "faq", Score: 0.8, Answer: "30 days."}}
	m := New(context.Background(), chat, "cli")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m.input.SetValue("  return policy?  ")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.waiting)
	assert.Empty(t, m.input.Value())

	m, _ = update(t, m, cmd())
	assert.False(t, m.waiting)
	require.Len(t, m.messages, 2)
	assert.Equal(t, model.Message{Role: model.RoleUser, Content: "return policy?"}, m.messages[0])
	assert.Equal(t, "30 days.", m.messages[1].Content)
	assert.Contains(t, m.status, "route=faq")
	assert.Contains(t, m.View(), "Shop Assistant")
}

func TestModel_ErrorKeepsTranscript(t *testing.T) {
	chat := &fakeChat{err: errors.New("embedding provider down")}
	m := New(context.Background(), chat, "cli")

	m.input.SetValue("hello")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	assert.Empty(t, m.messages)
	assert.Contains(t, m.status, "embedding provider down")
}

func TestModel_IgnoresBlankAndReset(t *testing.T) {
	chat := &fakeChat{}
	m := New(context.Background(), chat, "cli")
	m.messages = []model.Message{{Role: model.RoleUser, Content: "x"}}

	m.input.SetValue("   ")
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, 1, chat.resets)
	assert.Empty(t, m.messages)
}
