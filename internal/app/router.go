package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ppmdesk.io/ppmdesk/internal/api/generated"
	"ppmdesk.io/ppmdesk/internal/api/handlers"
	"ppmdesk.io/ppmdesk/internal/api/middleware"
	"ppmdesk.io/ppmdesk/internal/config"
)

// defaultAllowedOrigins is used when server.allowed_origins is empty.
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

// RouterDeps is everything newRouter needs beyond the handlers.
type RouterDeps struct {
	Config   *config.Config
	JWTCfg   middleware.JWTConfig
	Metrics  *middleware.HTTPMetrics
	Gatherer prometheus.Gatherer
}

const apiBasePath = "/api/v1"

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/auth/login",
	"/api/v1/health/",
}

// adminPrefixes are routes that require the admin role.
var adminPrefixes = []string{
	"/api/v1/admin/",
}

func newRouter(server generated.ServerInterface, deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}
	router.Use(cors.New(buildCORSConfig(deps.Config)))
	router.Use(jwtSkipPublic(deps.JWTCfg))
	router.Use(rbacByRoute())
	// The validator wraps ErrorHandler so rendered errors are checked too.
	router.Use(middleware.MustOpenAPIValidator(apiBasePath), middleware.ErrorHandler())

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	generated.RegisterHandlersWithOptions(router, server, generated.GinServerOptions{
		BaseURL:      apiBasePath,
		ErrorHandler: handlers.ParamError,
	})
	return router
}

// jwtSkipPublic returns middleware that applies JWT auth to API routes that
// are not public. /metrics and other non-API paths are left alone.
func jwtSkipPublic(cfg middleware.JWTConfig) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(cfg)
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !strings.HasPrefix(path, apiBasePath+"/") || hasAnyPrefix(path, publicPrefixes) {
			c.Next()
			return
		}
		jwtMw(c)
	}
}

// rbacByRoute enforces the role ladder: admin routes need admin, reads need
// viewer, writes need editor.
func rbacByRoute() gin.HandlerFunc {
	admin := middleware.RequireRole(middleware.RoleAdmin)
	read := middleware.RequireRole(middleware.RoleViewer)
	write := middleware.RequireRole(middleware.RoleEditor)
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		switch {
		case !strings.HasPrefix(path, apiBasePath+"/") || hasAnyPrefix(path, publicPrefixes):
			c.Next()
		case hasAnyPrefix(path, adminPrefixes):
			admin(c)
		case c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead:
			read(c)
		default:
			write(c)
		}
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// buildCORSConfig turns the server CORS settings into a cors.Config. A
// wildcard origin is honoured only with unsafe_allow_all_origins, and then
// credentials are switched off.
func buildCORSConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if cfg.Server.UnsafeAllowAllOrigins {
		cc.AllowAllOrigins = true
		cc.AllowCredentials = false
		return cc
	}

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, o := range cfg.Server.AllowedOrigins {
		o = strings.TrimSpace(o)
		if o == "" || o == "*" {
			continue
		}
		origins = append(origins, o)
	}
	if len(origins) == 0 {
		origins = append(origins, defaultAllowedOrigins...)
	}
	cc.AllowOrigins = origins
	cc.AllowCredentials = cfg.Server.AllowCredentials
	return cc
}
