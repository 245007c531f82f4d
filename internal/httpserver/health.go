package httpserver

import (
	"shop-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "Shop assistant is up"
	HealthVersion = "1.0.0"
	ServiceName   = "shop-assistant"
)

// probe builds the common body shared by /health, /ready and /live.
func probe(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probe("healthy"))
}

// readyCheck reports the collection answers are read from and the loaded route names.
// @Summary Readiness Check
// @Description Ready once the router is built; includes the active FAQ collection
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	routes := srv.router.Routes()
	names := make([]string, 0, len(routes))
	for _, r := range routes {
		names = append(names, r.Name)
	}

	body := probe("ready")
	body["collection"] = srv.faqUC.Collection()
	body["routes"] = names
	response.OK(c, body)
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probe("alive"))
}
