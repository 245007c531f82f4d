package http

import (
	"strings"

	"shop-assistant/internal/conversation"
	"shop-assistant/internal/model"
)

// --- Request DTOs ---

type sendMessageReq struct {
	SessionID string `json:"session_id" binding:"required,max=128"`
	Text      string `json:"text"       binding:"required,max=2000"`
}

func (r sendMessageReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return conversation.ErrEmptyQuery
	}
	return nil
}

// --- Response DTOs ---

type messageResp struct {
	SessionID string  `json:"session_id"`
	Route     string  `json:"route"`
	Score     float64 `json:"score"`
	Answer    string  `json:"answer"`
}

func (h *handler) newMessageResp(sessionID string, reply conversation.Reply) messageResp {
	return messageResp{
		SessionID: sessionID,
		Route:     reply.Route,
		Score:     reply.Score,
		Answer:    reply.Answer,
	}
}

type historyItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type historyResp struct {
	SessionID string        `json:"session_id"`
	Messages  []historyItem `json:"messages"`
}

func (h *handler) newHistoryResp(sessionID string, messages []model.Message) historyResp {
	items := make([]historyItem, len(messages))
	for i, m := range messages {
		items[i] = historyItem{Role: string(m.Role), Content: m.Content}
	}
	return historyResp{SessionID: sessionID, Messages: items}
}

type resetResp struct {
	SessionID string `json:"session_id"`
	Reset     bool   `json:"reset"`
}
