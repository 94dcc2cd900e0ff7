package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the server configuration loaded from the environment
type Config struct {
	Server    ServerConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Cache     CacheConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	EnableProfiling bool          `envconfig:"ENABLE_PROFILING" default:"false"`
	EnableSwagger   bool          `envconfig:"ENABLE_SWAGGER" default:"true"`
}

// SecurityConfig holds header, CORS and request limits
type SecurityConfig struct {
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	MaxBodyBytes   int64         `envconfig:"MAX_BODY_BYTES" default:"16384"`
	EnableHSTS     bool          `envconfig:"ENABLE_HSTS" default:"false"`
	CSPReportURI   string        `envconfig:"CSP_REPORT_URI"`
}

// RateLimitConfig holds the per-IP request budget
type RateLimitConfig struct {
	IPLimitPerMin   int `envconfig:"RATE_LIMIT_PER_MIN" default:"120"`
	BurstMultiplier int `envconfig:"RATE_LIMIT_BURST_MULTIPLIER" default:"2"`
}

// RedisConfig points the rate limiter at a shared Redis. An empty Addr keeps
// rate limiting in memory.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CacheConfig controls the response cache for deterministic endpoints
type CacheConfig struct {
	TTL time.Duration `envconfig:"CACHE_TTL" default:"15m"`
}

// Load reads an optional .env file and then the process environment
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("No .env file loaded", "files", envFiles, "error", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values envconfig cannot
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release, test (got %q)", c.Server.GinMode)
	}
	if _, err := ParseLogLevel(c.Server.LogLevel); err != nil {
		return err
	}
	if c.RateLimit.IPLimitPerMin <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MIN must be positive (got %d)", c.RateLimit.IPLimitPerMin)
	}
	if c.RateLimit.BurstMultiplier <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST_MULTIPLIER must be positive (got %d)", c.RateLimit.BurstMultiplier)
	}
	if c.Security.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive (got %s)", c.Security.RequestTimeout)
	}
	return nil
}

// ParseLogLevel maps LOG_LEVEL to a slog level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error (got %q)", level)
}
