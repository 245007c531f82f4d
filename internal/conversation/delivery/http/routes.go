package http

import (
	"shop-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps chat endpoints. Only message submission is rate limited
// because it is the call that reaches the embedding and LLM providers.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/messages", mw.RateLimit(), h.SendMessage)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id/history", h.History)
		sessions.DELETE("/:id", h.Reset)
	}
}
