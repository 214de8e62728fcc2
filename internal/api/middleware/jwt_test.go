package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ppmdesk.io/ppmdesk/internal/pkg/errors"
)

func TestJWTConfigValidateToken_Success(t *testing.T) {
	cfg := JWTConfig{
		SigningKey: []byte("test-signing-key-1234567890123456"),
		Issuer:     "ppmdesk",
		ExpiresIn:  time.Hour,
	}

	token, _, err := GenerateToken(cfg, "alice", []string{"editor"})
	require.NoError(t, err)

	claims, err := cfg.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, []string{"editor"}, claims.Roles)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.NotBefore)
}

func TestJWTConfigValidateToken_RejectsInvalidIssuer(t *testing.T) {
	issuerCfg := JWTConfig{
		SigningKey: []byte("issuer-key-123456789012345678901234"),
		Issuer:     "ppmdesk",
		ExpiresIn:  time.Hour,
	}
	token, _, err := GenerateToken(issuerCfg, "alice", nil)
	require.NoError(t, err)

	_, err = JWTConfig{SigningKey: issuerCfg.SigningKey, Issuer: "other-issuer"}.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestJWTConfigValidateToken_SupportsVerificationKeyRotation(t *testing.T) {
	oldKey := []byte("old-key-123456789012345678901234567890")
	newKey := []byte("new-key-123456789012345678901234567890")

	token, _, err := GenerateToken(JWTConfig{SigningKey: oldKey, Issuer: "ppmdesk", ExpiresIn: time.Hour}, "alice", nil)
	require.NoError(t, err)

	claims, err := JWTConfig{
		SigningKey:       newKey,
		VerificationKeys: [][]byte{oldKey},
		Issuer:           "ppmdesk",
	}.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	_, err = JWTConfig{SigningKey: newKey, Issuer: "ppmdesk"}.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTConfigValidateToken_RejectsNoneSigningMethod(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{
		Username: "mallory",
		Roles:    []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ppmdesk",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = JWTConfig{
		SigningKey: []byte("signing-key-123456789012345678901234"),
		Issuer:     "ppmdesk",
	}.ValidateToken(tokenString)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTConfigValidateToken_Expired(t *testing.T) {
	cfg := JWTConfig{SigningKey: []byte("expired-key-123456789012345678901234"), ExpiresIn: -time.Minute}
	token, _, err := GenerateToken(cfg, "alice", nil)
	require.NoError(t, err)

	_, err = cfg.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTConfigValidateToken_RequiresSigningKey(t *testing.T) {
	token, _, err := GenerateToken(JWTConfig{
		SigningKey: []byte("key-to-sign-valid-token-1234567890123456"),
		ExpiresIn:  time.Hour,
	}, "alice", nil)
	require.NoError(t, err)

	_, err = JWTConfig{}.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenUnverifiable)
	assert.ErrorIs(t, err, ErrJWTSigningKeyMissing)
}

func TestJWTAuth(t *testing.T) {
	cfg := JWTConfig{SigningKey: []byte("middleware-key-1234567890123456789012"), Issuer: "ppmdesk", ExpiresIn: time.Hour}
	valid, _, err := GenerateToken(cfg, "alice", []string{"viewer"})
	require.NoError(t, err)
	expired, _, err := GenerateToken(JWTConfig{SigningKey: cfg.SigningKey, Issuer: "ppmdesk", ExpiresIn: -time.Minute}, "alice", nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"missing header", "", http.StatusUnauthorized, apperrors.CodeAuthFailed},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, apperrors.CodeAuthFailed},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, apperrors.CodeTokenInvalid},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, apperrors.CodeTokenExpired},
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(JWTAuth(cfg))
			router.GET("/me", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{
					"username": GetUsername(c.Request.Context()),
					"roles":    GetRoles(c.Request.Context()),
				})
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.code != "" {
				assert.Equal(t, tt.code, body["code"])
				return
			}
			assert.Equal(t, "alice", body["username"])
		})
	}
}
