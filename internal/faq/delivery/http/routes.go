package http

import (
	"shop-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps FAQ endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/search", mw.RateLimit(), h.Search)
	rg.POST("/ingest", h.Ingest)
}
