package http

import (
	"shop-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps router endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/classify", mw.RateLimit(), h.Classify)
	rg.GET("/routes", h.Routes)
}
