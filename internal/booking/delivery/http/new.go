package http

import (
	"github.com/gin-gonic/gin"

	"tailortalk/internal/booking"
	"tailortalk/pkg/log"
)

// Handler is the public interface for the booking HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Confirm(c *gin.Context)
	SessionDetail(c *gin.Context)
	SessionDelete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc booking.UseCase
}

// New creates a new HTTP handler for the booking domain.
func New(l log.Logger, uc booking.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
