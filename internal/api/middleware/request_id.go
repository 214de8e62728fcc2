package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/hasura"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
)

type contextKey string

const (
	// RequestIDHeader is the HTTP header for request tracing.
	RequestIDHeader = "X-Request-ID"

	ctxKeyRequestID contextKey = "request_id"
	ctxKeyUsername  contextKey = "username"
	ctxKeyRoles     contextKey = "roles"
)

// RequestID injects a unique request ID into the context, the response
// header, the request logger and outgoing Hasura calls.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			id, _ := uuid.NewV7()
			rid = id.String()
		}
		c.Set(string(ctxKeyRequestID), rid)
		c.Writer.Header().Set(RequestIDHeader, rid)

		ctx := context.WithValue(c.Request.Context(), ctxKeyRequestID, rid)
		ctx = hasura.WithRequestID(ctx, rid)
		ctx = logger.WithContext(ctx, zap.String("request_id", rid))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// SetOperatorContext stores the authenticated operator in ctx and adds the
// operator name to the request logger.
func SetOperatorContext(ctx context.Context, username string, roles []string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUsername, username)
	ctx = context.WithValue(ctx, ctxKeyRoles, roles)
	return logger.WithContext(ctx, zap.String("operator", username))
}

// GetUsername extracts the operator name from context.
func GetUsername(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyUsername).(string); ok {
		return v
	}
	return ""
}

// GetRoles extracts operator roles from context.
func GetRoles(ctx context.Context) []string {
	if v, ok := ctx.Value(ctxKeyRoles).([]string); ok {
		return v
	}
	return nil
}
