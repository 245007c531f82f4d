package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shop-assistant/internal/conversation"
	"shop-assistant/pkg/response"
)

// respondError translates use-case errors into response envelopes.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, conversation.ErrEmptySessionID),
		errors.Is(err, conversation.ErrEmptyQuery):
		response.Error(c, err, nil)
	case errors.Is(err, conversation.ErrSessionUnknown):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
