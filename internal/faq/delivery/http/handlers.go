package http

import (
	"github.com/gin-gonic/gin"

	"shop-assistant/pkg/response"
)

// Search godoc
// @Summary     Search the FAQ
// @Description Returns the FAQ entries nearest to the query, best match first.
// @Tags        FAQ
// @Produce     json
// @Param       q query string true  "Question text"
// @Param       k query int    false "Number of entries (default: 2, max: 20)"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Collection not ingested"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/faq/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	entries, err := h.uc.Retrieve(ctx, req.Query, req.toK())
	if err != nil {
		h.l.Errorf(ctx, "faq.delivery.http.Search: uc.Retrieve: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSearchResp(entries))
}

// Ingest godoc
// @Summary     Ingest the FAQ corpus
// @Description Loads the configured FAQ CSV source into the vector index.
// @Tags        FAQ
// @Accept      json
// @Produce     json
// @Param       body body ingestReq false "Ingestion mode (existence, content_hash or force)"
// @Success     200  {object} ingestResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Another ingestion holds the lock"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/faq/ingest [POST]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Ingest(ctx, req.toInput(h.defaultMode))
	if err != nil {
		h.l.Errorf(ctx, "faq.delivery.http.Ingest: uc.Ingest: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newIngestResp(out))
}
