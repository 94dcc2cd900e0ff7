package security

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ZanzyTHEbar/baby-gender-predictor/internal/errors"
)

// SecurityConfig holds request hardening limits
type SecurityConfig struct {
	MaxBodyBytes   int64         `json:"max_body_bytes"`
	RequestTimeout time.Duration `json:"request_timeout"`
}

// DefaultSecurityConfig returns secure defaults
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		MaxBodyBytes:   16 << 10,
		RequestTimeout: 10 * time.Second,
	}
}

// SecurityMiddleware bundles the request hardening middlewares
type SecurityMiddleware struct {
	config SecurityConfig
}

// NewSecurityMiddleware creates a new security middleware instance
func NewSecurityMiddleware(config SecurityConfig) *SecurityMiddleware {
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = DefaultSecurityConfig().MaxBodyBytes
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = DefaultSecurityConfig().RequestTimeout
	}
	return &SecurityMiddleware{config: config}
}

var allowedContentTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// ValidateContentType rejects request bodies the quiz forms and the JSON API
// cannot have produced
func (sm *SecurityMiddleware) ValidateContentType(c *gin.Context) {
	contentType := strings.ToLower(c.GetHeader("Content-Type"))

	if contentType != "" && c.Request.Method != http.MethodGet {
		found := false
		for _, allowed := range allowedContentTypes {
			if strings.HasPrefix(contentType, allowed) {
				found = true
				break
			}
		}

		if !found {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"error": "unsupported content type",
			})
			return
		}
	}

	c.Next()
}

// MaxBodySize caps the number of bytes a handler may read from the body
func (sm *SecurityMiddleware) MaxBodySize(c *gin.Context) {
	if c.Request.ContentLength > sm.config.MaxBodyBytes {
		_ = c.Error(apperrors.NewValidationError("request body too large"))
		c.Abort()
		return
	}
	if c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, sm.config.MaxBodyBytes)
	}
	c.Next()
}

// RequestTimeout bounds the request context
func (sm *SecurityMiddleware) RequestTimeout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), sm.config.RequestTimeout)
	defer cancel()

	c.Request = c.Request.WithContext(ctx)
	c.Header("X-Timeout", strconv.Itoa(int(sm.config.RequestTimeout.Seconds())))

	c.Next()

	if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
		_ = c.Error(apperrors.NewTimeoutError("Request timed out", ctx.Err()))
	}
}

// StaticCacheHeaders marks embedded assets as long-lived
func StaticCacheHeaders(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Next()
}
