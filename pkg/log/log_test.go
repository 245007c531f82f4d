package log

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMsgAndFields(t *testing.T) {
	tests := []struct {
		name       string
		args       []any
		wantMsg    string
		wantFields int
	}{
		{name: "Empty", args: nil, wantMsg: "", wantFields: 0},
		{name: "Message Only", args: []any{"hello"}, wantMsg: "hello", wantFields: 0},
		{name: "Key Value Pairs", args: []any{"done", "provider", "groq", "tokens", 12}, wantMsg: "done", wantFields: 4},
		{name: "Odd Trailing Value", args: []any{"Failed: ", errors.New("boom")}, wantMsg: "Failed: boom", wantFields: 0},
		{name: "Non String Key", args: []any{"x", 1, 2}, wantMsg: "x1 2", wantFields: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, fields := msgAndFields(tt.args)
			if msg != tt.wantMsg {
				t.Errorf("msg = %q, want %q", msg, tt.wantMsg)
			}
			if len(fields) != tt.wantFields {
				t.Errorf("len(fields) = %d, want %d", len(fields), tt.wantFields)
			}
		})
	}
}

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewWithZap(zap.New(core))

	ctx := context.WithValue(context.Background(), RequestIDKey, "sess-1")
	l.Infof(ctx, "classified %s", "faq")
	l.Debugf(ctx, "dropped below level")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "classified faq" {
		t.Errorf("unexpected message %q", entry.Message)
	}
	if got := entry.ContextMap()[string(RequestIDKey)]; got != "sess-1" {
		t.Errorf("request_id = %v, want sess-1", got)
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("DEBUG") != zapcore.DebugLevel {
		t.Error("expected debug level")
	}
	if parseLevel("bogus") != zapcore.InfoLevel {
		t.Error("expected info as default")
	}
}
