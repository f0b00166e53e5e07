package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes the service's Prometheus instruments. All instruments are
// registered on a private registry so tests can create metrics freely.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	scoresComputed  *prometheus.CounterVec
	submissions     *prometheus.CounterVec
	persistFailures prometheus.Counter
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	rateLimited     prometheus.Counter
	boardSize       prometheus.GaugeFunc
}

// NewMetrics builds and registers the instrument set. boardSize is sampled
// on every scrape.
func NewMetrics(boardSize func() float64) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ecoscore_http_requests_total",
			Help: "HTTP requests by method, path, and status.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ecoscore_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		scoresComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ecoscore_scores_computed_total",
			Help: "Scoring operations by source (items or quiz).",
		}, []string{"source"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ecoscore_leaderboard_submissions_total",
			Help: "Leaderboard submissions by outcome.",
		}, []string{"status"}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecoscore_leaderboard_persist_failures_total",
			Help: "Leaderboard writes that failed to reach storage.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecoscore_cache_hits_total",
			Help: "Response cache hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecoscore_cache_misses_total",
			Help: "Response cache misses.",
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecoscore_rate_limited_total",
			Help: "Requests rejected by the rate limiter.",
		}),
	}

	if boardSize != nil {
		m.boardSize = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "ecoscore_leaderboard_entries",
			Help: "Current number of leaderboard entries.",
		}, boardSize)
		registry.MustRegister(m.boardSize)
	}

	registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.scoresComputed,
		m.submissions,
		m.persistFailures,
		m.cacheHits,
		m.cacheMisses,
		m.rateLimited,
	)

	return m
}

// Handler serves the /metrics scrape endpoint.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Middleware records request counts and latencies per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.requestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}

// RecordScore counts one scoring operation from the given source.
func (m *Metrics) RecordScore(source string) {
	m.scoresComputed.WithLabelValues(source).Inc()
}

// RecordSubmission counts a leaderboard submission outcome.
func (m *Metrics) RecordSubmission(status string) {
	m.submissions.WithLabelValues(status).Inc()
}

// IncrementPersistFailure counts a degraded leaderboard write.
func (m *Metrics) IncrementPersistFailure() {
	m.persistFailures.Inc()
}

// IncrementCacheHit counts a response cache hit.
func (m *Metrics) IncrementCacheHit() {
	m.cacheHits.Inc()
}

// IncrementCacheMiss counts a response cache miss.
func (m *Metrics) IncrementCacheMiss() {
	m.cacheMisses.Inc()
}

// IncrementRateLimited counts a throttled request.
func (m *Metrics) IncrementRateLimited() {
	m.rateLimited.Inc()
}
