// Package tui is a terminal chat front end for a conversation session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shop-assistant/internal/conversation"
	"shop-assistant/internal/model"
)

// ChatPort is the TUI-facing subset of conversation.UseCase.
type ChatPort interface {
	Handle(ctx context.Context, sessionID, query string) (conversation.Reply, error)
	Reset(ctx context.Context, sessionID string) bool
}

type replyMsg struct {
	query string
	reply conversation.Reply
	err   error
}

// Model is the Bubble Tea model for one chat session.
type Model struct {
	ctx       context.Context
	chat      ChatPort
	sessionID string
	input     textinput.Model
	viewport  viewport.Model
	messages  []model.Message
	status    string
	waiting   bool
	ready     bool
}

// New creates a chat model bound to sessionID.
func New(ctx context.Context, chat ChatPort, sessionID string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about orders, shipping, returns..."
	ti.Focus()
	ti.CharLimit = 2000
	return Model{
		ctx:       ctx,
		chat:      chat,
		sessionID: sessionID,
		input:     ti,
		viewport:  viewport.New(0, 0),
		status:    "Enter to send, Ctrl+R to reset, Ctrl+C to quit.",
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and reply events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, bh := transcriptBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + ih + 1 // header, status, input box, input line
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(3, msg.Height-reserved-bh)
		m.refresh()
		return m, nil

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.status = errorStyle.Render("Error: " + msg.err.Error())
			return m, nil
		}
		m.messages = append(m.messages,
			model.Message{Role: model.RoleUser, Content: msg.query},
			model.Message{Role: model.RoleAssistant, Content: msg.reply.Answer},
		)
		m.status = fmt.Sprintf("route=%s score=%.3f", msg.reply.Route, msg.reply.Score)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.chat.Reset(m.ctx, m.sessionID)
			m.messages = nil
			m.status = "Session reset."
			m.refresh()
			return m, nil
		case tea.KeyEnter:
			q := strings.TrimSpace(m.input.Value())
			if q == "" || m.waiting {
				return m, nil
			}
			m.input.SetValue("")
			m.waiting = true
			m.status = "Thinking..."
			return m, m.send(q)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the header, transcript, input and status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Shop Assistant") + " " + mutedStyle.Render("session "+m.sessionID)
	return header + "\n" +
		transcriptBoxStyle.Render(m.viewport.View()) + "\n" +
		inputBoxStyle.Render(m.input.View()) + "\n" +
		mutedStyle.Render(m.status)
}

func (m Model) send(query string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.chat.Handle(m.ctx, m.sessionID, query)
		return replyMsg{query: query, reply: reply, err: err}
	}
}

func (m *Model) refresh() {
	m.viewport.SetContent(renderTranscript(m.messages, m.viewport.Width))
	m.viewport.GotoBottom()
}

func renderTranscript(messages []model.Message, width int) string {
	if len(messages) == 0 {
		return mutedStyle.Render("No messages yet.")
	}
	wrap := lipgloss.NewStyle().Width(max(10, width-2))
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		label := assistantStyle.Render("Assistant:")
		if msg.Role == model.RoleUser {
			label = userStyle.Render("User:")
		}
		lines = append(lines, wrap.Render(label+" "+msg.Content))
	}
	return strings.Join(lines, "\n\n")
}

var (
	headerStyle        = lipgloss.NewStyle().Bold(true)
	mutedStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
