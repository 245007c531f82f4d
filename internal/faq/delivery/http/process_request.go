package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processIngestReq accepts an empty body as "use the default mode".
func (h *handler) processIngestReq(c *gin.Context) (ingestReq, error) {
	var req ingestReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
