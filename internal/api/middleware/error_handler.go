// Package middleware provides the gin middleware of the PPM Desk API.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	Params      map[string]interface{} `json:"params,omitempty"`
	FieldErrors []apperrors.FieldError `json:"field_errors,omitempty"`
}

// ErrorHandler renders the last error pushed with c.Error(). AppErrors keep
// their status and code; anything else becomes a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.FromContext(c.Request.Context())

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			fields := []zap.Field{
				zap.String("code", appErr.Code),
				zap.String("message", appErr.Message),
				zap.Int("status", appErr.HTTPStatus),
			}
			if appErr.Err != nil {
				fields = append(fields, zap.Error(appErr.Err))
			}
			if appErr.HTTPStatus >= http.StatusInternalServerError {
				log.Error("Request error", fields...)
			} else {
				log.Warn("Request error", fields...)
			}
			c.JSON(appErr.HTTPStatus, responseOf(appErr))
			return
		}

		log.Error("Unhandled request error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    apperrors.CodeInternal,
			Message: "An internal error occurred",
		})
	}
}

func responseOf(e *apperrors.AppError) ErrorResponse {
	return ErrorResponse{
		Code:        e.Code,
		Message:     e.Message,
		Params:      e.Params,
		FieldErrors: e.FieldErrors,
	}
}

// abortWithError stops the chain and writes e directly. Used by middleware
// that runs before handlers.
func abortWithError(c *gin.Context, e *apperrors.AppError) {
	c.AbortWithStatusJSON(e.HTTPStatus, responseOf(e))
}
