package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/api/generated"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
)

// GetLiveness handles GET /health/live.
func (s *Server) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, generated.Health{Status: "ok"})
}

// GetReadiness handles GET /health/ready. The process is ready when Hasura
// answers the health check operation.
func (s *Server) GetReadiness(c *gin.Context) {
	checks := make(map[string]string)
	status, httpStatus := "ok", http.StatusOK

	if s.upstream == nil {
		checks["hasura"] = "not_configured"
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	} else if err := s.upstream.Ping(c.Request.Context()); err != nil {
		logger.FromContext(c.Request.Context()).Warn("Readiness check failed", zap.Error(err))
		checks["hasura"] = "error"
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	} else {
		checks["hasura"] = "ok"
	}

	c.JSON(httpStatus, generated.Health{Status: status, Checks: &checks})
}
