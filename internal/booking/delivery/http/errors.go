package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tailortalk/internal/booking"
	"tailortalk/pkg/response"
)

// mapError translates domain errors into client-facing ones. Unknown errors
// are masked with a generic message.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, booking.ErrEmptyMessage),
		errors.Is(err, booking.ErrNoSlotSelected),
		errors.Is(err, booking.ErrInvalidSlot):
		return err
	default:
		return errors.New("failed to process request")
	}
}

func (h *handler) handleSessionError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrSessionNotFound) {
		response.NotFound(c, "Session not found")
		return
	}
	h.l.Errorf(c.Request.Context(), "session operation: %v", err)
	response.InternalError(c, err)
}
