// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gameforge-api/internal/config"
	"gameforge-api/internal/interfaces/http/handler"
	"gameforge-api/internal/interfaces/http/middleware"
	"gameforge-api/pkg/utils"
)

// Handlers 路由依赖的处理器集合
type Handlers struct {
	Health   *handler.HealthHandler
	Auth     *handler.AuthHandler
	Game     *handler.GameHandler
	Content  *handler.ContentHandler
	Settings *handler.SettingsHandler
}

// Router HTTP 路由器
type Router struct {
	engine     *gin.Engine
	cfg        *config.Config
	jwtManager *utils.JWTManager
	handlers   Handlers
	rateLimit  gin.HandlerFunc
}

// New 创建新的路由器
func New(cfg *config.Config, jwtManager *utils.JWTManager, handlers Handlers, rateLimit gin.HandlerFunc) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:     gin.New(),
		cfg:        cfg,
		jwtManager: jwtManager,
		handlers:   handlers,
		rateLimit:  rateLimit,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	// 系统端点
	r.engine.GET("/health", r.handlers.Health.Health)
	r.engine.GET("/ready", r.handlers.Health.Ready)
	r.engine.GET("/live", r.handlers.Health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		path := r.cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	// 生成的图片静态托管
	r.engine.Static("/media", r.cfg.Media.Root)

	v1 := r.engine.Group("/v1")
	RegisterV1Routes(v1, r.jwtManager, r.handlers, r.rateLimit)
}
