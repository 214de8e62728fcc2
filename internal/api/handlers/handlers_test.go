package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ppmdesk.io/ppmdesk/internal/api/generated"
	"ppmdesk.io/ppmdesk/internal/api/middleware"
	"ppmdesk.io/ppmdesk/internal/config"
	"ppmdesk.io/ppmdesk/internal/pkg/inflight"
	"ppmdesk.io/ppmdesk/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

var testJWT = middleware.JWTConfig{
	SigningKey: []byte("handlers-test-signing-key-0123456789"),
	Issuer:     "ppmdesk-test",
	ExpiresIn:  time.Hour,
}

func newTestServer(t *testing.T, upstream Pinger) *Server {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewServer(ServerDeps{
		JWTCfg: testJWT,
		Operators: []config.OperatorConfig{
			{Username: "ed", PasswordHash: string(hash), Roles: []string{"editor"}},
		},
		Upstream: upstream,
	})
}

func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

func TestLogin(t *testing.T) {
	s := newTestServer(t, nil)
	r := newTestRouter()
	r.POST("/auth/login", s.Login)

	tests := []struct {
		name     string
		body     any
		wantCode int
		wantErr  string
	}{
		{"valid credentials", generated.LoginRequest{Username: "ed", Password: "correct horse"}, http.StatusOK, ""},
		{"wrong password", generated.LoginRequest{Username: "ed", Password: "battery staple"}, http.StatusUnauthorized, "AUTH_FAILED"},
		{"unknown operator", generated.LoginRequest{Username: "mallory", Password: "correct horse"}, http.StatusUnauthorized, "AUTH_FAILED"},
		{"missing password", map[string]string{"username": "ed"}, http.StatusBadRequest, "INVALID_REQUEST_FIELD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/auth/login", tt.body)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorCode(t, w))
				return
			}
			var resp generated.LoginResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "ed", resp.Username)
			assert.Equal(t, []string{"editor"}, resp.Roles)

			claims, err := testJWT.ValidateToken(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, "ed", claims.Username)
		})
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, passwordHashCost, cost)
}

func TestDummyHashMatchesOperatorCost(t *testing.T) {
	cost, err := bcrypt.Cost(dummyHash())
	require.NoError(t, err)
	assert.Equal(t, passwordHashCost, cost)

	operator, err := HashPassword("anything")
	require.NoError(t, err)
	operatorCost, err := bcrypt.Cost([]byte(operator))
	require.NoError(t, err)
	assert.Equal(t, operatorCost, cost)
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name     string
		upstream Pinger
		wantCode int
		wantHas  string
	}{
		{"hasura up", fakePinger{}, http.StatusOK, "ok"},
		{"hasura down", fakePinger{err: errors.New("connection refused")}, http.StatusServiceUnavailable, "error"},
		{"no upstream", nil, http.StatusServiceUnavailable, "not_configured"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.upstream)
			r := newTestRouter()
			r.GET("/health/ready", s.GetReadiness)
			r.GET("/health/live", s.GetLiveness)

			assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health/live", nil).Code)

			w := do(r, http.MethodGet, "/health/ready", nil)
			require.Equal(t, tt.wantCode, w.Code)
			var h generated.Health
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
			require.NotNil(t, h.Checks)
			assert.Equal(t, tt.wantHas, (*h.Checks)["hasura"])
		})
	}
}

func TestLogLevel(t *testing.T) {
	t.Cleanup(func() { _ = logger.SetLevel("error") })

	s := newTestServer(t, nil)
	r := newTestRouter()
	r.GET("/admin/log-level", s.GetLogLevel)
	r.PUT("/admin/log-level", s.SetLogLevel)

	w := do(r, http.MethodPut, "/admin/log-level", generated.LogLevel{Level: "debug"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/admin/log-level", nil)
	var got generated.LogLevel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "debug", got.Level)

	w = do(r, http.MethodPut, "/admin/log-level", generated.LogLevel{Level: "loud"})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, w))
}

func TestGeneratedWrappers_ParamErrors(t *testing.T) {
	s := newTestServer(t, nil)
	r := newTestRouter()
	generated.RegisterHandlersWithOptions(r, s, generated.GinServerOptions{ErrorHandler: ParamError})

	tests := []struct {
		method    string
		path      string
		wantField string
	}{
		{http.MethodGet, "/assets/abc", "as_id"},
		{http.MethodGet, "/assets?archived=maybe", "archived"},
		{http.MethodGet, "/service-plans/7/candidate-assets?disc_id=x", "disc_id"},
		{http.MethodDelete, "/service-plans/7/assets/1.5", "as_id"},
		{http.MethodPut, "/calendar/events/key/schedule", "bsp_key"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(r, tt.method, tt.path, nil)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			var resp middleware.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "INVALID_REQUEST_FIELD", resp.Code)
			assert.Contains(t, resp.Message, tt.wantField)
		})
	}

	// A bound request reaches the handler.
	w := do(r, http.MethodGet, "/admin/log-level", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got generated.LogLevel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "error", got.Level)
}

func TestValueOf(t *testing.T) {
	assert.False(t, valueOf[bool](nil))
	yes := true
	assert.True(t, valueOf(&yes))
	assert.Equal(t, 0, valueOf[int](nil))
	id := 12
	assert.Equal(t, 12, valueOf(&id))
}

func TestFail_SupersededIsConflict(t *testing.T) {
	r := newTestRouter()
	r.GET("/x", func(c *gin.Context) {
		fail(c, fmt.Errorf("load assets: %w", inflight.ErrSuperseded))
	})

	w := do(r, http.MethodGet, "/x", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "REQUEST_SUPERSEDED", errorCode(t, w))
}

func TestLatest_NewerRequestSupersedesOlder(t *testing.T) {
	s := newTestServer(t, nil)
	started := make(chan struct{})

	r := newTestRouter()
	r.GET("/slow", func(c *gin.Context) {
		out, err := latest(c, s, "assets", func(ctx context.Context) (string, error) {
			close(started)
			<-ctx.Done()
			return "", ctx.Err()
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.String(http.StatusOK, out)
	})
	r.GET("/fast", func(c *gin.Context) {
		out, err := latest(c, s, "assets", func(context.Context) (string, error) {
			return "fresh", nil
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.String(http.StatusOK, out)
	})

	slow := make(chan *httptest.ResponseRecorder, 1)
	go func() { slow <- do(r, http.MethodGet, "/slow", nil) }()
	<-started

	fast := do(r, http.MethodGet, "/fast", nil)
	assert.Equal(t, http.StatusOK, fast.Code)
	assert.Equal(t, "fresh", fast.Body.String())

	w := <-slow
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "REQUEST_SUPERSEDED", errorCode(t, w))
}
