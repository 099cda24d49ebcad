package httpserver

import (
	"github.com/gin-gonic/gin"

	"tailortalk/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "tailortalk-api"
)

// healthCheck runs one synthetic conversation turn through the booking
// agent so a green check means the whole pipeline is answering.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	probe := srv.bookingUC.Probe(c.Request.Context())

	status := "healthy"
	if probe.AgentStatus != "healthy" {
		status = "degraded"
	}

	response.OK(c, gin.H{
		"status":          status,
		"agent_status":    probe.AgentStatus,
		"active_sessions": probe.ActiveSessions,
		"version":         HealthVersion,
		"service":         ServiceName,
		"environment":     srv.environment,
	})
}

func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"service": ServiceName,
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}
