package router

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/cache"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/config"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/frontend"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/handlers"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/monitoring"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/random"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:          "8080",
			GinMode:       gin.TestMode,
			LogLevel:      "info",
			EnableSwagger: true,
		},
		Security: config.SecurityConfig{
			AllowedOrigins: []string{"http://localhost:8080"},
			RequestTimeout: 5 * time.Second,
			MaxBodyBytes:   16384,
		},
		RateLimit: config.RateLimitConfig{IPLimitPerMin: 1000, BurstMultiplier: 1},
		Cache:     config.CacheConfig{TTL: time.Minute},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()

	renderer, err := frontend.NewRenderer()
	require.NoError(t, err)

	logger := monitoring.NewLoggerWithWriter(io.Discard, slog.LevelInfo)
	prom := monitoring.NewPrometheusCollectors()
	metrics := monitoring.NewMetrics().WithPrometheus(prom)

	limiter := ratelimit.NewRateLimiter(nil, ratelimit.Config{
		IPLimit:         cfg.RateLimit.IPLimitPerMin,
		BurstMultiplier: cfg.RateLimit.BurstMultiplier,
	}, metrics)
	t.Cleanup(limiter.Close)

	responseCache := cache.NewCache(cfg.Cache.TTL)
	t.Cleanup(responseCache.Close)

	h := handlers.New(handlers.Options{
		Random:   random.NewSequence([]float64{0.5}, []int{0}),
		Renderer: renderer,
		Metrics:  metrics,
		Logger:   logger,
	})

	return New(cfg, Deps{
		Handler:     h,
		Renderer:    renderer,
		Metrics:     metrics,
		Logger:      logger,
		Prometheus:  prom,
		RateLimiter: limiter,
		Cache:       responseCache,
	})
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndexPage(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	csp := w.Header().Get("Content-Security-Policy")
	require.Contains(t, csp, "'nonce-")
	nonce := strings.TrimSuffix(strings.SplitN(strings.SplitN(csp, "'nonce-", 2)[1], "'", 2)[0], "'")
	assert.Contains(t, w.Body.String(), `nonce="`+nonce+`"`)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	assert.NotEmpty(t, w.Header().Get(monitoring.RequestIDHeader))
}

func TestIndexPageCompressed(t *testing.T) {
	r := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := serve(r, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), frontend.SiteDisclaimer)
}

func TestStaticAssets(t *testing.T) {
	r := newTestRouter(t, testConfig())

	for _, path := range []string{"/static/style.css", "/static/app.js"} {
		w := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=86400", path)
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChartResponsesAreCached(t *testing.T) {
	r := newTestRouter(t, testConfig())

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, ChartAPIPath, strings.NewReader(`{"age":24,"month":2}`))
		req.Header.Set("Content-Type", "application/json")
		return serve(r, req)
	}

	first := post()
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := post()
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/cache/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCachedChartsAreCounted(t *testing.T) {
	r := newTestRouter(t, testConfig())

	for i, want := range []string{"MISS", "HIT", "HIT"} {
		req := httptest.NewRequest(http.MethodPost, ChartPartialPath, strings.NewReader("age=25&month=2"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := serve(r, req)
		require.Equal(t, http.StatusOK, w.Code, i)
		assert.Equal(t, want, w.Header().Get("X-Cache"), i)
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		CacheHits   int64 `json:"cache_hits"`
		Predictions map[string]struct {
			Total    int64            `json:"total"`
			Outcomes map[string]int64 `json:"outcomes"`
		} `json:"predictions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.CacheHits)
	assert.Equal(t, int64(3), stats.Predictions["chinese"].Total)
	assert.Equal(t, map[string]int64{"girl": 3}, stats.Predictions["chinese"].Outcomes)

	prom := serve(r, httptest.NewRequest(http.MethodGet, "/metrics/prometheus", nil))
	require.Equal(t, http.StatusOK, prom.Code)
	assert.Contains(t, prom.Body.String(), `predictor_predictions_total{outcome="girl",quiz="chinese"} 3`)
}

func TestIncompleteQuizIsNotCached(t *testing.T) {
	r := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/heartbeat", strings.NewReader(`{"heartrate":"high"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, w.Header().Get("X-Cache"))
	assert.Contains(t, w.Body.String(), `"category":"incomplete_input"`)
}

func TestPartialForm(t *testing.T) {
	r := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/partials/chinese", strings.NewReader("age=25&month=2"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := serve(r, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "you&#39;re likely having a girl!")
}

func TestUnsupportedContentType(t *testing.T) {
	r := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chinese", strings.NewReader("age=24"))
	req.Header.Set("Content-Type", "text/xml")
	w := serve(r, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.IPLimitPerMin = 2
	r := newTestRouter(t, cfg)

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/reveal-idea", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/reveal-idea", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"category":"rate_limit"`)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/chinese", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:8080", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/chinese", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = serve(r, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestOperationalEndpoints(t *testing.T) {
	r := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, ChartAPIPath, strings.NewReader(`{"age":30,"month":7}`))
	req.Header.Set("Content-Type", "application/json")
	serve(r, req)

	tests := []struct {
		path     string
		contains string
	}{
		{"/health", `"status":"ok"`},
		{"/metrics", `"compression"`},
		{"/metrics/prometheus", `predictor_predictions_total{outcome="girl",quiz="chinese"} 1`},
		{"/ratelimit/stats", `"redis_enabled":false`},
		{"/swagger/doc.json", "Baby Gender Predictor API"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(r, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestOptionalRoutesDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Server.EnableSwagger = false
	r := newTestRouter(t, cfg)

	for _, path := range []string{"/swagger/index.html", "/debug/pprof/"} {
		w := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestProfilingEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.Server.EnableProfiling = true
	r := newTestRouter(t, cfg)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/debug/pprof/goroutine?debug=1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
