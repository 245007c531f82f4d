package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shop-assistant/internal/faq"
	"shop-assistant/internal/faq/repository"
	"shop-assistant/pkg/response"
)

func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, faq.ErrEmptyQuery),
		errors.Is(err, faq.ErrInvalidIngestMode):
		response.Error(c, err, nil)
	case errors.Is(err, repository.ErrCollectionNotFound):
		response.NotFound(c, err)
	case errors.Is(err, faq.ErrIngestLockTimeout):
		response.Conflict(c, err)
	default:
		response.InternalError(c, err)
	}
}
