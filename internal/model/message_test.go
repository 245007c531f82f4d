package model

import "testing"

func TestTranscript(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: "What is the return policy?"},
		{Role: RoleAssistant, Content: "30 days."},
	}

	want := "User: What is the return policy?\nAssistant: 30 days."
	if got := Transcript(messages); got != want {
		t.Errorf("Transcript() = %q, want %q", got, want)
	}
	if got := Transcript(nil); got != "" {
		t.Errorf("Transcript(nil) = %q, want empty", got)
	}
}

func TestTranscriptLine(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{role: RoleUser, want: "User: hi"},
		{role: RoleAssistant, want: "Assistant: hi"},
		{role: "SYSTEM", want: "System: hi"},
		{role: "", want: ": hi"},
	}
	for _, tt := range tests {
		if got := (Message{Role: tt.role, Content: "hi"}).TranscriptLine(); got != tt.want {
			t.Errorf("TranscriptLine(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}
