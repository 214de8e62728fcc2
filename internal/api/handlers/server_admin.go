package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/api/generated"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
)

// GetLogLevel handles GET /admin/log-level.
func (s *Server) GetLogLevel(c *gin.Context) {
	c.JSON(http.StatusOK, generated.LogLevel{Level: logger.GetLevel().String()})
}

// SetLogLevel handles PUT /admin/log-level.
func (s *Server) SetLogLevel(c *gin.Context) {
	ctx := c.Request.Context()

	var req generated.SetLogLevelJSONRequestBody
	if !bindJSON(c, &req) {
		return
	}
	previous := logger.GetLevel().String()
	if err := logger.SetLevel(req.Level); err != nil {
		fail(c, apperrors.ErrValidation(apperrors.FieldError{
			Field:   "level",
			Code:    "oneof",
			Message: "level must be one of [debug info warn error]",
		}))
		return
	}

	logger.FromContext(ctx).Info("Log level changed",
		zap.String("from", previous),
		zap.String("to", logger.GetLevel().String()),
	)
	if s.audit != nil {
		s.audit.LogAction(ctx, "admin.log_level", "log_level", req.Level, actorFromCtx(ctx),
			map[string]interface{}{"previous": previous})
	}
	c.JSON(http.StatusOK, generated.LogLevel{Level: logger.GetLevel().String()})
}
