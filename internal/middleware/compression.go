package middleware

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// CompressionConfig holds configuration for response compression
type CompressionConfig struct {
	MinSize          int      // Minimum response size to compress (bytes)
	CompressionLevel int      // Gzip compression level (1-9, 9 is best compression)
	ContentTypes     []string // Content types to compress
}

// DefaultCompressionConfig returns the default compression configuration
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize:          1024,
		CompressionLevel: gzip.DefaultCompression,
		ContentTypes: []string{
			"application/json",
			"text/plain",
			"text/html",
			"text/css",
			"text/javascript",
			"application/javascript",
		},
	}
}

// CompressionMiddleware provides gzip compression for HTTP responses
type CompressionMiddleware struct {
	config CompressionConfig
	stats  *CompressionStats
	pool   sync.Pool
}

// NewCompressionMiddleware creates a new compression middleware
func NewCompressionMiddleware(config CompressionConfig) *CompressionMiddleware {
	if config.CompressionLevel < gzip.HuffmanOnly || config.CompressionLevel > gzip.BestCompression {
		config.CompressionLevel = gzip.DefaultCompression
	}

	cm := &CompressionMiddleware{
		config: config,
		stats:  NewCompressionStats(),
	}
	cm.pool.New = func() interface{} {
		gz, _ := gzip.NewWriterLevel(nil, cm.config.CompressionLevel)
		return gz
	}
	return cm
}

// Handler returns a Gin middleware that gzips compressible responses of at
// least MinSize bytes for clients that accept it
func (cm *CompressionMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cm.clientAcceptsGzip(c.Request) {
			c.Next()
			return
		}

		gzw := &gzipResponseWriter{ResponseWriter: c.Writer, cm: cm}
		c.Writer = gzw
		defer func() {
			gzw.finish()
			c.Writer = gzw.ResponseWriter
		}()

		c.Next()
	}
}

// clientAcceptsGzip checks if the client accepts gzip compression
func (cm *CompressionMiddleware) clientAcceptsGzip(r *http.Request) bool {
	if r.Method == http.MethodHead || r.Header.Get("Upgrade") != "" {
		return false
	}
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

// shouldCompress checks if the content type should be compressed
func (cm *CompressionMiddleware) shouldCompress(contentType string) bool {
	contentType = strings.ToLower(contentType)
	for _, ct := range cm.config.ContentTypes {
		if strings.HasPrefix(contentType, ct) {
			return true
		}
	}
	return false
}

// GetStats returns compression statistics
func (cm *CompressionMiddleware) GetStats() map[string]interface{} {
	return cm.stats.GetStats()
}

// gzipResponseWriter buffers the start of the body until it knows whether the
// response is worth compressing
type gzipResponseWriter struct {
	gin.ResponseWriter
	cm *CompressionMiddleware

	buf      bytes.Buffer
	gz       *gzip.Writer
	decided  bool
	compress bool
	original int64
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	w.original += int64(len(data))

	if !w.decided {
		w.buf.Write(data)
		if w.buf.Len() < w.cm.config.MinSize {
			return len(data), nil
		}
		if err := w.decide(true); err != nil {
			return 0, err
		}
		return len(data), nil
	}

	if w.compress {
		return w.gz.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

func (w *gzipResponseWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// WriteHeaderNow commits to an uncompressed response when nothing is buffered
func (w *gzipResponseWriter) WriteHeaderNow() {
	if !w.decided {
		_ = w.decide(false)
	}
	w.ResponseWriter.WriteHeaderNow()
}

func (w *gzipResponseWriter) Written() bool {
	return w.buf.Len() > 0 || w.ResponseWriter.Written()
}

func (w *gzipResponseWriter) Size() int {
	if w.original > 0 {
		return int(w.original)
	}
	return w.ResponseWriter.Size()
}

func (w *gzipResponseWriter) Flush() {
	if !w.decided {
		_ = w.decide(w.buf.Len() >= w.cm.config.MinSize)
	}
	if w.gz != nil {
		_ = w.gz.Flush()
	}
	w.ResponseWriter.Flush()
}

// decide picks compressed or plain output and drains the buffer into it
func (w *gzipResponseWriter) decide(largeEnough bool) error {
	w.decided = true

	h := w.Header()
	status := w.ResponseWriter.Status()
	w.compress = largeEnough &&
		status != http.StatusNoContent && status != http.StatusNotModified &&
		h.Get("Content-Encoding") == "" &&
		w.cm.shouldCompress(h.Get("Content-Type"))

	if w.compress {
		h.Set("Content-Encoding", "gzip")
		h.Add("Vary", "Accept-Encoding")
		h.Del("Content-Length")

		w.gz = w.cm.pool.Get().(*gzip.Writer)
		w.gz.Reset(w.ResponseWriter)
	}

	if w.buf.Len() == 0 {
		return nil
	}
	pending := w.buf.Bytes()
	var err error
	if w.compress {
		_, err = w.gz.Write(pending)
	} else {
		_, err = w.ResponseWriter.Write(pending)
	}
	w.buf.Reset()
	return err
}

// finish flushes whatever is still buffered and records stats
func (w *gzipResponseWriter) finish() {
	if !w.decided {
		_ = w.decide(false)
	}

	if w.compress {
		_ = w.gz.Close()
		w.gz.Reset(nil)
		w.cm.pool.Put(w.gz)
		w.gz = nil
	}

	if w.original == 0 {
		return
	}
	written := int64(w.ResponseWriter.Size())
	if written < 0 {
		written = 0
	}
	w.cm.stats.RecordRequest(w.original, written, w.compress)
}

// CompressionStats tracks compression statistics
type CompressionStats struct {
	TotalRequests      int64
	CompressedRequests int64
	TotalBytes         int64
	CompressedBytes    int64
	// original size of the compressed responses only
	compressedOriginal int64
}

// NewCompressionStats creates new compression statistics
func NewCompressionStats() *CompressionStats {
	return &CompressionStats{}
}

// RecordRequest records a request's compression stats
func (cs *CompressionStats) RecordRequest(originalSize, compressedSize int64, compressed bool) {
	atomic.AddInt64(&cs.TotalRequests, 1)
	atomic.AddInt64(&cs.TotalBytes, originalSize)

	if compressed {
		atomic.AddInt64(&cs.CompressedRequests, 1)
		atomic.AddInt64(&cs.CompressedBytes, compressedSize)
		atomic.AddInt64(&cs.compressedOriginal, originalSize)
	}
}

// GetStats returns current compression statistics
func (cs *CompressionStats) GetStats() map[string]interface{} {
	total := atomic.LoadInt64(&cs.TotalRequests)
	compressedRequests := atomic.LoadInt64(&cs.CompressedRequests)
	compressedBytes := atomic.LoadInt64(&cs.CompressedBytes)
	compressedOriginal := atomic.LoadInt64(&cs.compressedOriginal)

	compressionRatio := float64(1)
	if compressedOriginal > 0 {
		compressionRatio = float64(compressedBytes) / float64(compressedOriginal)
	}

	return map[string]interface{}{
		"total_requests":      total,
		"compressed_requests": compressedRequests,
		"total_bytes":         atomic.LoadInt64(&cs.TotalBytes),
		"compressed_bytes":    compressedBytes,
		"compression_ratio":   compressionRatio,
		"compression_savings": 1.0 - compressionRatio,
	}
}
