package http

import (
	"github.com/gin-gonic/gin"

	"shop-assistant/internal/conversation"
	"shop-assistant/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Classifies the message, answers it through the matching route and records both turns in the session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Session id and message text"
// @Success     200  {object} messageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.Handle(ctx, req.SessionID, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.SendMessage: uc.Handle: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newMessageResp(req.SessionID, reply))
}

// History godoc
// @Summary     Get session history
// @Description Returns the retained messages of a chat session, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	messages, err := h.uc.History(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(id, messages))
}

// Reset godoc
// @Summary     Reset a session
// @Description Forgets the history of a chat session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} resetResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if !h.uc.Reset(ctx, id) {
		h.respondError(c, conversation.ErrSessionUnknown)
		return
	}

	h.l.Infof(ctx, "conversation.delivery.http.Reset: session %s reset", id)
	response.OK(c, resetResp{SessionID: id, Reset: true})
}
