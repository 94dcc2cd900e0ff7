package router

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ZanzyTHEbar/baby-gender-predictor/docs"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/cache"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/config"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/errors"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/frontend"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/handlers"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/middleware"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/monitoring"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/ratelimit"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/security"
)

// Paths whose responses depend only on the request body and may be cached
const (
	ChartAPIPath     = "/api/v1/chinese"
	ChartPartialPath = "/partials/chinese"
)

// Deps are the long-lived components the router mounts. Prometheus,
// RateLimiter and Cache are optional.
type Deps struct {
	Handler     *handlers.Handler
	Renderer    *frontend.Renderer
	Metrics     *monitoring.Metrics
	Logger      *monitoring.Logger
	Prometheus  *monitoring.PrometheusCollectors
	RateLimiter *ratelimit.RateLimiter
	Cache       *cache.Cache
}

// New builds the engine with the full middleware chain and every route
func New(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.New()

	// Request IDs and monitoring first so every request is counted and logged
	r.Use(errors.RecoveryHandler())
	r.Use(monitoring.RequestIDMiddleware())
	r.Use(monitoring.MonitoringMiddleware(deps.Metrics, deps.Logger))
	r.Use(monitoring.SecurityMonitoringMiddleware(deps.Logger, cfg.Security.MaxBodyBytes))
	r.Use(errors.ErrorHandler())

	r.Use(security.SecurityHeadersMiddleware(cfg.Security.EnableHSTS))
	r.Use(cors.New(corsConfig(cfg.Security.AllowedOrigins)))

	compression := middleware.NewCompressionMiddleware(middleware.DefaultCompressionConfig())
	r.Use(compression.Handler())

	sm := security.NewSecurityMiddleware(security.SecurityConfig{
		MaxBodyBytes:   cfg.Security.MaxBodyBytes,
		RequestTimeout: cfg.Security.RequestTimeout,
	})
	r.Use(sm.RequestTimeout)
	r.Use(sm.ValidateContentType)
	r.Use(sm.MaxBodySize)

	h := deps.Handler

	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.IPRateLimitMiddleware())
	}
	if deps.Cache != nil {
		r.Use(deps.Cache.Middleware(deps.Metrics, deps.Logger, h.RecordCachedChart, ChartAPIPath, ChartPartialPath))
	}

	// Site
	r.GET("/", security.CSPMiddleware(cfg.Security.CSPReportURI), frontend.NewPageHandler(deps.Renderer))
	static := r.Group("/static", security.StaticCacheHeaders)
	static.GET("/*filepath", frontend.StaticHandler())
	static.HEAD("/*filepath", frontend.StaticHandler())

	partials := r.Group("/partials")
	partials.POST("/chinese", h.ChartPartial)
	partials.POST("/heartbeat", h.HeartbeatPartial)
	partials.POST("/wives-tales", h.WivesTalesPartial)
	partials.GET("/reveal-idea", h.RevealIdeaPartial)

	api := r.Group("/api/v1")
	api.POST("/chinese", h.Chart)
	api.POST("/heartbeat", h.Heartbeat)
	api.POST("/wives-tales", h.WivesTales)
	api.GET("/reveal-idea", h.RevealIdea)
	api.GET("/ideas", h.Ideas)
	api.GET("/quizzes", h.Quizzes)

	// Operations
	r.GET("/health", h.Health)
	r.HEAD("/health", h.Health)
	r.GET("/metrics", func(c *gin.Context) {
		stats := deps.Metrics.GetStats()
		stats["compression"] = compression.GetStats()
		c.JSON(http.StatusOK, stats)
	})
	if deps.Prometheus != nil {
		r.GET("/metrics/prometheus", deps.Prometheus.Handler())
	}
	if deps.Cache != nil {
		r.GET("/cache/stats", deps.Cache.HandleStats())
	}
	if deps.RateLimiter != nil {
		r.GET("/ratelimit/stats", deps.RateLimiter.HandleStats())
	}

	if cfg.Server.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if cfg.Server.EnableProfiling {
		deps.Logger.SystemLogger("profiling_enabled", "pprof mounted at /debug/pprof")
		pp := r.Group("/debug/pprof")
		pp.GET("/", gin.WrapF(pprof.Index))
		pp.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		pp.GET("/profile", gin.WrapF(pprof.Profile))
		pp.GET("/symbol", gin.WrapF(pprof.Symbol))
		pp.GET("/trace", gin.WrapF(pprof.Trace))
		pp.GET("/:name", func(c *gin.Context) {
			pprof.Handler(c.Param("name")).ServeHTTP(c.Writer, c.Request)
		})
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowOrigins = []string{"http://localhost:8080"}
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", monitoring.RequestIDHeader}
	cfg.ExposeHeaders = []string{
		monitoring.RequestIDHeader,
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		"X-Cache",
	}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
