package handlers

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"ppmdesk.io/ppmdesk/internal/api/generated"
	"ppmdesk.io/ppmdesk/internal/api/middleware"
	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
)

const passwordHashCost = 12

// dummyHash is compared against when the username is unknown. It uses the
// operator hash cost so both failure paths take the same time.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("ppmdesk-unknown-operator"), passwordHashCost)
	if err != nil {
		panic(fmt.Sprintf("generate dummy password hash: %v", err))
	}
	return hash
})

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req generated.LoginJSONRequestBody
	if !bindJSON(c, &req) {
		return
	}
	if req.Username == "" {
		fail(c, apperrors.ErrInvalidRequestFieldf("username"))
		return
	}
	if req.Password == "" {
		fail(c, apperrors.ErrInvalidRequestFieldf("password"))
		return
	}

	op, ok := s.operators[req.Username]
	hash := []byte(op.PasswordHash)
	if !ok {
		hash = dummyHash()
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil || !ok {
		logger.FromContext(ctx).Warn("login failed: invalid credentials", zap.String("username", req.Username))
		fail(c, apperrors.Unauthorized(apperrors.CodeAuthFailed, "invalid username or password"))
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, op.Username, op.Roles)
	if err != nil {
		fail(c, apperrors.Wrap(err, apperrors.CodeInternal, "failed to issue token", http.StatusInternalServerError))
		return
	}

	if s.audit != nil {
		s.audit.LogAction(ctx, "operator.login", "operator", op.Username, op.Username, nil)
	}

	roles := op.Roles
	if roles == nil {
		roles = []string{}
	}
	c.JSON(http.StatusOK, generated.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  op.Username,
		Roles:     roles,
	})
}

// HashPassword hashes a password using bcrypt. The seed tool uses it to
// produce security.operators[].password_hash values.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
