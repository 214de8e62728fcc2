package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/pkg/inflight"
)

// fail hands err to the error middleware.
func fail(c *gin.Context, err error) {
	if errors.Is(err, inflight.ErrSuperseded) {
		err = apperrors.ErrRequestSuperseded()
	}
	_ = c.Error(err)
}

// ParamError is the error handler of the generated wrappers. A path or
// query parameter that does not bind is a 400 INVALID_REQUEST_FIELD.
func ParamError(c *gin.Context, err error, status int) {
	fail(c, apperrors.Wrap(err, apperrors.CodeInvalidRequestField, err.Error(), status))
	c.Abort()
}

// valueOf dereferences an optional parameter, zero when absent.
func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// bindJSON decodes the request body. A malformed body is a 400.
func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		fail(c, apperrors.Wrap(err, apperrors.CodeInvalidRequestField, "request body is not valid JSON for this endpoint", http.StatusBadRequest))
		return false
	}
	return true
}

// screenKey identifies one operator's view of one screen for stale-request
// suppression.
func screenKey(ctx context.Context, screen string) string {
	return actorFromCtx(ctx) + ":" + screen
}

// latest runs load as the newest request for the operator's screen. A
// response overtaken by a newer request is dropped with ErrSuperseded.
func latest[T any](c *gin.Context, s *Server, screen string, load func(ctx context.Context) (T, error)) (T, error) {
	ctx := c.Request.Context()
	return inflight.Do(ctx, s.tracker, screenKey(ctx, screen), load)
}
