package cache

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ZanzyTHEbar/baby-gender-predictor/internal/errors"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/monitoring"
)

// Metrics is the subset of monitoring.Metrics the cache reports to
type Metrics interface {
	IncrementCacheHit()
	IncrementCacheMiss()
}

// MetaKey is the context key a handler sets to attach a note to its cached
// response. The note is handed back to the HitFunc when the response is
// replayed.
const MetaKey = "cache_meta"

// HitFunc runs for every response served from the cache, after it is written
type HitFunc func(ctx *gin.Context, meta string)

// CacheItem represents a cached response with expiration
type CacheItem struct {
	Data        []byte    `json:"data"`
	ContentType string    `json:"content_type"`
	Meta        string    `json:"meta,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IsExpired checks if the cache item has expired
func (c *CacheItem) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// Cache provides thread-safe caching with TTL
type Cache struct {
	mu    sync.RWMutex
	items map[string]*CacheItem
	ttl   time.Duration

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewCache creates a new cache with the specified TTL. Close stops the
// background sweep.
func NewCache(ttl time.Duration) *Cache {
	cache := &Cache{
		items: make(map[string]*CacheItem),
		ttl:   ttl,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	go cache.cleanup(sweepInterval(ttl))

	return cache
}

// sweepInterval follows the TTL between one second and five minutes. Reads
// drop expired items themselves, so a coarse sweep only bounds memory.
func sweepInterval(ttl time.Duration) time.Duration {
	switch {
	case ttl <= 0 || ttl > 5*time.Minute:
		return 5 * time.Minute
	case ttl < time.Second:
		return time.Second
	}
	return ttl
}

// cleanup removes expired items periodically
func (c *Cache) cleanup(interval time.Duration) {
	defer close(c.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *Cache) removeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, item := range c.items {
		if item.IsExpired() {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// Close stops the background sweep
func (c *Cache) Close() {
	c.closeOnce.Do(func() {
		close(c.stop)
		<-c.done
	})
}

// GenerateKey hashes the parts of a request that determine its response
func GenerateKey(parts ...[]byte) string {
	h := md5.New()
	for _, p := range parts {
		h.Write(p)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves an item from the cache
func (c *Cache) Get(key string) (*CacheItem, bool) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}
	if item.IsExpired() {
		c.mu.Lock()
		// a concurrent Set may have replaced the expired item
		if current, ok := c.items[key]; ok && current.IsExpired() {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return item, true
}

// Set stores an item in the cache
func (c *Cache) Set(key string, data []byte, contentType string) {
	c.set(key, data, contentType, "")
}

func (c *Cache) set(key string, data []byte, contentType, meta string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &CacheItem{
		Data:        append([]byte(nil), data...),
		ContentType: contentType,
		Meta:        meta,
		ExpiresAt:   time.Now().Add(c.ttl),
	}
}

// Size returns the number of items in the cache
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Stats returns cache statistics
func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	totalItems := len(c.items)
	expiredItems := 0

	for _, item := range c.items {
		if item.IsExpired() {
			expiredItems++
		}
	}

	return map[string]interface{}{
		"total_items":   totalItems,
		"expired_items": expiredItems,
		"active_items":  totalItems - expiredItems,
		"ttl_seconds":   c.ttl.Seconds(),
	}
}

// HandleStats serves Stats as JSON
func (c *Cache) HandleStats() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, c.Stats())
	}
}

// Middleware caches successful responses of the given POST routes. Only
// routes whose response is a pure function of the request body belong here.
// onHit, when set, stands in for the handler side effects a replayed
// response skips.
func (c *Cache) Middleware(metrics Metrics, logger *monitoring.Logger, onHit HitFunc, paths ...string) gin.HandlerFunc {
	cacheable := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		cacheable[p] = struct{}{}
	}

	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodPost {
			ctx.Next()
			return
		}
		if _, ok := cacheable[ctx.Request.URL.Path]; !ok {
			ctx.Next()
			return
		}

		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			_ = ctx.Error(apperrors.NewValidationError("request body could not be read", err.Error()))
			ctx.Abort()
			return
		}
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

		cacheKey := GenerateKey(
			[]byte(ctx.Request.URL.Path),
			[]byte(ctx.ContentType()),
			body,
		)

		if item, found := c.Get(cacheKey); found {
			metrics.IncrementCacheHit()
			if logger != nil {
				logger.CacheLogger("hit", cacheKey, true, c.Size())
			}
			ctx.Header("X-Cache", "HIT")
			ctx.Data(http.StatusOK, item.ContentType, item.Data)
			ctx.Abort()
			if onHit != nil {
				onHit(ctx, item.Meta)
			}
			return
		}

		metrics.IncrementCacheMiss()
		if logger != nil {
			logger.CacheLogger("miss", cacheKey, false, c.Size())
		}
		ctx.Header("X-Cache", "MISS")

		wrapper := &responseWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = wrapper
		ctx.Next()
		ctx.Writer = wrapper.ResponseWriter

		if wrapper.Status() == http.StatusOK && len(ctx.Errors) == 0 {
			c.set(cacheKey, wrapper.body.Bytes(), wrapper.Header().Get("Content-Type"), ctx.GetString(MetaKey))
		}
	}
}

// responseWriter wraps gin.ResponseWriter to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
