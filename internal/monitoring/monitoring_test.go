package monitoring

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMetricsRecordPrediction(t *testing.T) {
	m := NewMetrics()

	m.RecordPrediction("heartbeat", "girl")
	m.RecordPrediction("heartbeat", "girl")
	m.RecordPrediction("heartbeat", "boy")
	m.RecordIncompleteInput("heartbeat")
	m.RecordIncompleteInput("wives-tales")

	stats := m.GetPredictionStats()
	heartbeat := stats["heartbeat"].(map[string]interface{})
	assert.Equal(t, int64(3), heartbeat["total"])
	assert.Equal(t, map[string]int64{"girl": 2, "boy": 1}, heartbeat["outcomes"])
	assert.Equal(t, int64(1), heartbeat["incomplete_input"])

	tales := stats["wives-tales"].(map[string]interface{})
	assert.Equal(t, int64(0), tales["total"])
	assert.Equal(t, int64(1), tales["incomplete_input"])
}

func TestMetricsStatsAndReset(t *testing.T) {
	m := NewMetrics()
	m.IncrementRequest()
	m.IncrementRequest()
	m.IncrementError()
	m.IncrementCacheHit()
	m.IncrementCacheMiss()
	m.RecordRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.RecordRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.RecordResponseTime(10 * time.Millisecond)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats["total_requests"])
	assert.Equal(t, 50.0, stats["error_rate_percent"])
	assert.Equal(t, 50.0, stats["cache_hit_rate_percent"])
	assert.Equal(t, map[int]int64{200: 2}, stats["status_code_distribution"])
	assert.Equal(t, 10*time.Millisecond, m.GetPercentileResponseTime(99))

	m.Reset()
	assert.Equal(t, int64(0), m.GetStats()["total_requests"])
	assert.Empty(t, m.GetStatusCodeDistribution())
	assert.Equal(t, time.Duration(0), m.GetPercentileResponseTime(50))
}

func TestPrometheusHandlerExposesSeries(t *testing.T) {
	prom := NewPrometheusCollectors()
	m := NewMetrics().WithPrometheus(prom)

	m.RecordPrediction("chinese", "boy")
	m.RecordRequest(http.MethodPost, "/api/v1/chinese", http.StatusOK, 2*time.Millisecond)
	m.IncrementRateLimitIPBlock()

	r := gin.New()
	r.GET("/metrics/prometheus", prom.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics/prometheus", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `predictor_predictions_total{outcome="boy",quiz="chinese"} 1`)
	assert.Contains(t, body, `predictor_http_requests_total{method="POST",route="/api/v1/chinese",status="200"} 1`)
	assert.Contains(t, body, "predictor_rate_limit_blocks_total 1")
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reuses a valid inbound id", func(t *testing.T) {
		inbound := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, inbound)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, inbound, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces a malformed inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid\nX-Injected: 1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid\nX-Injected: 1", w.Header().Get(RequestIDHeader))
	})
}

func TestMonitoringMiddlewareLogsAndCounts(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelInfo)
	metrics := NewMetrics()

	r := gin.New()
	r.Use(RequestIDMiddleware(), MonitoringMiddleware(metrics, logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	for _, path := range []string{"/ok", "/bad"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats["total_requests"])
	assert.Equal(t, int64(1), stats["error_count"])
	assert.Equal(t, map[int]int64{200: 1, 400: 1}, metrics.GetStatusCodeDistribution())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "HTTP Request", entry["msg"])
	assert.Equal(t, "/ok", entry["path"])
	assert.NotEmpty(t, entry["request_id"])
	assert.Contains(t, entry, "timestamp")
}

func TestSecurityMonitoringMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		userAgent string
		flagged   bool
		kind      string
	}{
		{"clean request", "/?q=hello", "Mozilla/5.0", false, ""},
		{"injection in query", "/?q=1%20UNION%20SELECT%20x", "Mozilla/5.0", true, "potential_injection"},
		{"plus encoded injection", "/?q=1+union+select+x", "Mozilla/5.0", true, "potential_injection"},
		{"scanner user agent", "/", "sqlmap/1.7", true, "suspicious_user_agent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithWriter(&buf, slog.LevelInfo)

			r := gin.New()
			r.Use(SecurityMonitoringMiddleware(logger, 1024))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.Header.Set("User-Agent", tt.userAgent)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if !tt.flagged {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), "suspicious_activity_detected")
			assert.Contains(t, buf.String(), tt.kind)
		})
	}
}

func TestDecodedQuery(t *testing.T) {
	assert.Equal(t, "q=1 UNION SELECT x", decodedQuery("q=1%20UNION%20SELECT%20x"))
	assert.Equal(t, "q=a b", decodedQuery("q=a+b"))
	assert.Equal(t, "q=%zz", decodedQuery("q=%zz"))
	assert.True(t, containsInjectionPatterns(decodedQuery("q=%zz<script>")), "malformed escapes are matched as sent")
}

func TestContainsAnyFold(t *testing.T) {
	assert.True(t, containsAnyFold("DROP TABLE users", injectionPatterns))
	assert.False(t, containsAnyFold("", injectionPatterns))
	assert.False(t, containsAnyFold("age=24&month=2", injectionPatterns))
}
