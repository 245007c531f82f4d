package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role is the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// TranscriptLine renders m as "<Role>: <content>" with the role capitalised.
func (m Message) TranscriptLine() string {
	return capitalize(string(m.Role)) + ": " + m.Content
}

// Transcript joins messages into a newline-separated transcript.
func Transcript(messages []Message) string {
	lines := make([]string, len(messages))
	for i, m := range messages {
		lines[i] = m.TranscriptLine()
	}
	return strings.Join(lines, "\n")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
