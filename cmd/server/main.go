package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/cache"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/config"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/errors"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/frontend"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/handlers"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/monitoring"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/random"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/ratelimit"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/router"
)

// @title Baby Gender Predictor API
// @version 1.0
// @description Novelty gender prediction quizzes and gender reveal ideas. For entertainment only.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Validate already accepted the level
	level, _ := config.ParseLogLevel(cfg.Server.LogLevel)
	appLogger := monitoring.NewLogger(level)
	slog.SetDefault(appLogger.Logger)
	gin.SetMode(cfg.Server.GinMode)

	redisClient, err := ratelimit.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		slog.Warn("Continuing without Redis", "error", err)
	}

	prom := monitoring.NewPrometheusCollectors()
	appMetrics := monitoring.NewMetrics().WithPrometheus(prom)

	limiter := ratelimit.NewRateLimiter(redisClient, ratelimit.Config{
		IPLimit:         cfg.RateLimit.IPLimitPerMin,
		BurstMultiplier: cfg.RateLimit.BurstMultiplier,
		CleanupInterval: 10 * time.Minute,
	}, appMetrics)

	appCache := cache.NewCache(cfg.Cache.TTL)

	renderer, err := frontend.NewRenderer()
	if err != nil {
		slog.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	h := handlers.New(handlers.Options{
		Random:   random.Default(),
		Renderer: renderer,
		Metrics:  appMetrics,
		Logger:   appLogger,
		Redis:    redisClient,
	})

	r := router.New(cfg, router.Deps{
		Handler:     h,
		Renderer:    renderer,
		Metrics:     appMetrics,
		Logger:      appLogger,
		Prometheus:  prom,
		RateLimiter: limiter,
		Cache:       appCache,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.Security.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		appLogger.SystemLogger("server_start", "listening on :"+cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	limiter.Close()
	appCache.Close()
	if redisClient != nil {
		errors.SafeClose(redisClient, "redis client")
	}

	slog.Info("Server exited")
}
