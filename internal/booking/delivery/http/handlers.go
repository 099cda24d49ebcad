package http

import (
	"github.com/gin-gonic/gin"

	"tailortalk/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one turn of the booking conversation and returns the assistant reply with suggested slots.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/booking/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Confirm godoc
// @Summary     Confirm a booking slot
// @Description Books the selected slot on the calendar and records it in the session.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       body body confirmReq true "Selected slot"
// @Success     200 {object} confirmResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/booking/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConfirmReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ConfirmSlot(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ConfirmSlot: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newConfirmResp(output))
}

// SessionDetail godoc
// @Summary     Get session history
// @Description Returns the conversation history and bookings for a session.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) SessionDetail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.SessionDetail(ctx, id)
	if err != nil {
		h.handleSessionError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output.Session))
}

// SessionDelete godoc
// @Summary     Clear a session
// @Description Removes a session and its conversation history.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) SessionDelete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.SessionDelete(ctx, id); err != nil {
		h.handleSessionError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Session cleared"})
}
