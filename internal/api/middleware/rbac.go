package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
)

// Role is an operator role. Roles are ordered: each one grants everything
// the ones below it do.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

func (r Role) rank() int {
	switch r {
	case RoleViewer:
		return 1
	case RoleEditor:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

// Satisfies reports whether any of roles grants want.
func Satisfies(roles []string, want Role) bool {
	for _, r := range roles {
		if Role(r).rank() >= want.rank() {
			return true
		}
	}
	return false
}

// RequireRole returns middleware that rejects operators below role. It must
// run after JWTAuth.
func RequireRole(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := GetRoles(c.Request.Context())
		if roles == nil {
			abortWithError(c, apperrors.Forbidden(apperrors.CodeForbidden, "not authenticated"))
			return
		}
		if !Satisfies(roles, role) {
			abortWithError(c, apperrors.Forbidden(apperrors.CodeForbidden, "requires role "+string(role)))
			return
		}
		c.Next()
	}
}
