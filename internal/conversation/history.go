package conversation

import "shop-assistant/internal/model"

// History is a fixed-capacity ring buffer of messages. When full, appending
// drops the oldest message. A capacity <= 0 makes it unbounded.
type History struct {
	buf   []model.Message
	start int
	size  int
	limit int
}

// NewHistory creates a History holding at most limit messages.
func NewHistory(limit int) *History {
	h := &History{limit: limit}
	if limit > 0 {
		h.buf = make([]model.Message, limit)
	}
	return h
}

// Append adds m as the newest message.
func (h *History) Append(m model.Message) {
	if h.limit <= 0 {
		h.buf = append(h.buf, m)
		h.size++
		return
	}
	if h.size < h.limit {
		h.buf[(h.start+h.size)%h.limit] = m
		h.size++
		return
	}
	h.buf[h.start] = m
	h.start = (h.start + 1) % h.limit
}

// Len returns the number of retained messages.
func (h *History) Len() int {
	return h.size
}

// Messages returns the retained messages, oldest first.
func (h *History) Messages() []model.Message {
	out := make([]model.Message, h.size)
	if h.limit <= 0 {
		copy(out, h.buf)
		return out
	}
	for i := 0; i < h.size; i++ {
		out[i] = h.buf[(h.start+i)%h.limit]
	}
	return out
}

// Transcript renders the retained messages one "<Role>: <content>" per line.
func (h *History) Transcript() string {
	return model.Transcript(h.Messages())
}
