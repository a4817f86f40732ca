package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheWrite      prometheus.Observer
	cacheHitRatio   prometheus.Gauge
	cacheLookups    *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	explanations    *prometheus.CounterVec
	matchesPerQuery prometheus.Histogram

	cacheHitCount    uint64
	cacheLookupCount uint64
}

const (
	cacheResultHit   = "hit"
	cacheResultMiss  = "miss"
	cacheResultError = "error"
)

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "explanation_cache_lookup_seconds",
		Help:    "Latency of explanation cache lookups",
		Buckets: prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "explanation_cache_write_seconds",
		Help:    "Latency of explanation cache writes",
		Buckets: prometheus.DefBuckets,
	})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "explanation_cache_hit_ratio",
		Help: "Ratio of explanation cache hits to lookups",
	})

	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "explanation_cache_lookups_total",
		Help: "Explanation cache lookups by result",
	}, []string{"result"})

	dbQueryDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"query"})

	explanations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "match_explanations_total",
		Help: "Match explanations by outcome",
	}, []string{"outcome"})

	matchesPerQuery := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "scholarship_matches_per_request",
		Help:    "Number of scholarships matched per student lookup",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheWrite, cacheHitRatio, cacheLookups, dbQueryDuration, explanations, matchesPerQuery, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheWrite:      cacheWrite,
		cacheHitRatio:   cacheHitRatio,
		cacheLookups:    cacheLookups,
		dbQueryDuration: dbQueryDuration,
		explanations:    explanations,
		matchesPerQuery: matchesPerQuery,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordExplanationCache records one explanation cache lookup (hit, miss or error) and updates the hit ratio.
func (m *MetricsService) RecordExplanationCache(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	m.cacheLookups.WithLabelValues(result).Inc()
	if result == cacheResultHit {
		atomic.AddUint64(&m.cacheHitCount, 1)
	}
	lookups := atomic.AddUint64(&m.cacheLookupCount, 1)
	m.cacheHitRatio.Set(float64(atomic.LoadUint64(&m.cacheHitCount)) / float64(lookups))
}

// ObserveExplanationCacheWrite tracks explanation cache write latency.
func (m *MetricsService) ObserveExplanationCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveDBQuery records database query timing.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// RecordExplanation counts one explanation by outcome (generated, cached, unconfigured or a failure label).
func (m *MetricsService) RecordExplanation(outcome string) {
	if m == nil {
		return
	}
	m.explanations.WithLabelValues(outcome).Inc()
}

// ObserveMatches records how many scholarships a lookup matched.
func (m *MetricsService) ObserveMatches(count int) {
	if m == nil {
		return
	}
	m.matchesPerQuery.Observe(float64(count))
}
