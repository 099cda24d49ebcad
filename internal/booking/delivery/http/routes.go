package http

import (
	"github.com/gin-gonic/gin"

	"tailortalk/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The chat
// endpoints are rate limited; session inspection is not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	bookingGroup := rg.Group("/booking")
	{
		bookingGroup.POST("/chat", mw.RateLimit(), h.Chat)
		bookingGroup.POST("/confirm", mw.RateLimit(), h.Confirm)
	}

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id", h.SessionDetail)
		sessions.DELETE("/:id", h.SessionDelete)
	}
}
