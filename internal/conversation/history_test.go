package conversation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"shop-assistant/internal/model"
)

func msg(i int) model.Message {
	return model.Message{Role: model.RoleUser, Content: fmt.Sprintf("m%d", i)}
}

func contents(messages []model.Message) []string {
	out := make([]string, len(messages))
	for i, m := range messages {
		out[i] = m.Content
	}
	return out
}

func TestHistory(t *testing.T) {
	t.Run("Below Capacity", func(t *testing.T) {
		h := NewHistory(4)
		h.Append(msg(1))
		h.Append(msg(2))
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, []string{"m1", "m2"}, contents(h.Messages()))
	})

	t.Run("Evicts Oldest First", func(t *testing.T) {
		h := NewHistory(3)
		for i := 1; i <= 7; i++ {
			h.Append(msg(i))
		}
		assert.Equal(t, 3, h.Len())
		assert.Equal(t, []string{"m5", "m6", "m7"}, contents(h.Messages()))
	})

	t.Run("Unbounded", func(t *testing.T) {
		h := NewHistory(-1)
		for i := 1; i <= 50; i++ {
			h.Append(msg(i))
		}
		assert.Equal(t, 50, h.Len())
		assert.Equal(t, "m1", h.Messages()[0].Content)
	})

	t.Run("Messages Is A Copy", func(t *testing.T) {
		h := NewHistory(2)
		h.Append(msg(1))
		got := h.Messages()
		got[0].Content = "changed"
		assert.Equal(t, "m1", h.Messages()[0].Content)
	})

	t.Run("Transcript", func(t *testing.T) {
		h := NewHistory(0)
		assert.Equal(t, "", h.Transcript())
		h.Append(model.Message{Role: model.RoleUser, Content: "hi"})
		h.Append(model.Message{Role: model.RoleAssistant, Content: "hello"})
		assert.Equal(t, "User: hi\nAssistant: hello", h.Transcript())
	})
}
