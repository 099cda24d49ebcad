package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tailortalk/internal/booking"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, booking.ErrEmptyMessage
	}
	return req, nil
}

// processConfirmReq binds and validates the confirm-booking request body.
func (h *handler) processConfirmReq(c *gin.Context) (confirmReq, error) {
	var req confirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.SelectedSlot.Start.IsZero() || req.SelectedSlot.End.IsZero() {
		return req, booking.ErrNoSlotSelected
	}
	return req, nil
}
