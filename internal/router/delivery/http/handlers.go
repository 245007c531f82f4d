package http

import (
	"github.com/gin-gonic/gin"

	"shop-assistant/pkg/response"
)

// Classify godoc
// @Summary     Classify a message
// @Description Scores the text against every route's examples and returns the winning route, or "unknown" below the threshold.
// @Tags        Router
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Text and optional threshold"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/router/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	threshold := req.threshold(h.threshold)
	res, err := h.router.Classify(ctx, req.Text, threshold)
	if err != nil {
		h.l.Errorf(ctx, "router.delivery.http.Classify: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, classifyResp{Route: res.Route, Score: res.Score, Threshold: threshold})
}

// Routes godoc
// @Summary     List routes
// @Description Returns the configured routes in tie-break order.
// @Tags        Router
// @Produce     json
// @Success     200 {object} routesResp
// @Router      /api/v1/router/routes [GET]
func (h *handler) Routes(c *gin.Context) {
	response.OK(c, h.newRoutesResp(h.router.Routes()))
}
