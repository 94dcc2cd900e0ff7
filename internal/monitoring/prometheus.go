package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusCollectors are the exported Prometheus series. They live on their
// own registry so tests can build as many as they need.
type PrometheusCollectors struct {
	Registry         *prometheus.Registry
	Requests         *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	Predictions      *prometheus.CounterVec
	IncompleteInputs *prometheus.CounterVec
	CacheLookups     *prometheus.CounterVec
	RateLimitBlocks  prometheus.Counter
}

// NewPrometheusCollectors registers the application series on a fresh registry
func NewPrometheusCollectors() *PrometheusCollectors {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &PrometheusCollectors{
		Registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "predictor_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "predictor_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Predictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "predictor_predictions_total",
			Help: "Completed predictions by quiz and outcome.",
		}, []string{"quiz", "outcome"}),
		IncompleteInputs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "predictor_incomplete_inputs_total",
			Help: "Quiz submissions rejected because questions were unanswered.",
		}, []string{"quiz"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "predictor_cache_lookups_total",
			Help: "Response cache lookups by result.",
		}, []string{"result"}),
		RateLimitBlocks: factory.NewCounter(prometheus.CounterOpts{
			Name: "predictor_rate_limit_blocks_total",
			Help: "Requests rejected by the per-IP rate limiter.",
		}),
	}
}

func (p *PrometheusCollectors) observeRequest(method, route string, statusCode int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	p.Requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	p.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (p *PrometheusCollectors) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
