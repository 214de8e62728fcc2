package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))
		rid := w.Header().Get(RequestIDHeader)
		require.NotEmpty(t, rid)
		assert.Equal(t, rid, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, "client-42")
		router.ServeHTTP(w, req)
		assert.Equal(t, "client-42", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "client-42", w.Body.String())
	})
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewHTTPMetrics(reg)
	require.NoError(t, err)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/assets/:as_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/assets/1", "/assets/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP ppmdesk_http_requests_total Total number of HTTP requests processed.
# TYPE ppmdesk_http_requests_total counter
ppmdesk_http_requests_total{method="GET",route="/assets/:as_id",status="200"} 2
ppmdesk_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "ppmdesk_http_requests_total"))

	_, err = NewHTTPMetrics(reg)
	assert.Error(t, err, "registering twice fails")
}
