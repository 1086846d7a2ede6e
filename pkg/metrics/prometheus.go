// Package metrics provides Prometheus metrics for the pitchgen service.
package metrics

import (
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	datasetSubsystem = "datasets"
	httpSubsystem    = "http"
)

// Manager manages all Prometheus metrics for the pitchgen service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Generation
	datasetsGenerated  *prometheus.CounterVec
	rowsGenerated      *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec

	// Cache
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	cacheSize   prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pitchgen",
		histogramBuckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.datasetsGenerated = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   datasetSubsystem,
			Name:        "generated_total",
			Help:        "Total number of tables generated by dataset",
			ConstLabels: labels,
		},
		[]string{"dataset"},
	)

	m.rowsGenerated = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   datasetSubsystem,
			Name:        "rows_generated_total",
			Help:        "Total number of rows generated by dataset",
			ConstLabels: labels,
		},
		[]string{"dataset"},
	)

	m.generationDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   datasetSubsystem,
			Name:        "generation_duration_milliseconds",
			Help:        "Time spent generating one table in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"dataset"},
	)

	m.cacheHits = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   datasetSubsystem,
			Name:        "cache_hits_total",
			Help:        "Total number of tables served from the cache",
			ConstLabels: labels,
		},
		[]string{"dataset"},
	)

	m.cacheMisses = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   datasetSubsystem,
			Name:        "cache_misses_total",
			Help:        "Total number of cache lookups that required generation",
			ConstLabels: labels,
		},
		[]string{"dataset"},
	)

	m.cacheSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   datasetSubsystem,
		Name:        "cache_entries",
		Help:        "Current number of cached tables",
		ConstLabels: labels,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   httpSubsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests by endpoint and method",
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   httpSubsystem,
			Name:        "request_duration_milliseconds",
			Help:        "HTTP request duration in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   datasetSubsystem,
			Name:        "errors_by_component_total",
			Help:        "Total number of errors by component",
			ConstLabels: labels,
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   httpSubsystem,
			Name:        "errors_by_endpoint_total",
			Help:        "Total number of errors by endpoint",
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "error_type"},
	)
}

// RecordGenerated counts one generated table and its rows.
func (m *Manager) RecordGenerated(dataset string, rows int) {
	m.datasetsGenerated.WithLabelValues(dataset).Inc()
	m.rowsGenerated.WithLabelValues(dataset).Add(float64(rows))
}

// RecordGenerationLatency records generation time in milliseconds.
func (m *Manager) RecordGenerationLatency(dataset string, latencyMs float64) {
	m.generationDuration.WithLabelValues(dataset).Observe(latencyMs)
}

// RecordCacheHit increments the cache hit counter.
func (m *Manager) RecordCacheHit(dataset string) {
	m.cacheHits.WithLabelValues(dataset).Inc()
}

// RecordCacheMiss increments the cache miss counter.
func (m *Manager) RecordCacheMiss(dataset string) {
	m.cacheMisses.WithLabelValues(dataset).Inc()
}

// UpdateCacheSize sets the cached table count.
func (m *Manager) UpdateCacheSize(n int) {
	m.cacheSize.Set(float64(n))
}

// RecordHTTPRequest records an HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByComponent records an error with component and type labels.
func (m *Manager) RecordErrorByComponent(component, errorType string) {
	m.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// Package-level helpers write to the global manager.

// RecordGenerated counts one generated table and its rows.
func RecordGenerated(dataset string, rows int) {
	globalManager.RecordGenerated(dataset, rows)
}

// RecordGenerationLatency records generation time in milliseconds.
func RecordGenerationLatency(dataset string, latencyMs float64) {
	globalManager.RecordGenerationLatency(dataset, latencyMs)
}

// RecordCacheHit increments the cache hit counter.
func RecordCacheHit(dataset string) {
	globalManager.RecordCacheHit(dataset)
}

// RecordCacheMiss increments the cache miss counter.
func RecordCacheMiss(dataset string) {
	globalManager.RecordCacheMiss(dataset)
}

// UpdateCacheSize sets the cached table count.
func UpdateCacheSize(n int) {
	globalManager.UpdateCacheSize(n)
}

// RecordHTTPRequest records an HTTP request and its duration.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.RecordErrorByComponent(component, errorType)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

// Configure rebuilds the global manager on a fresh registry and returns it.
// It must run before any traffic; series recorded earlier are discarded.
func Configure(opts ...Option) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	globalManager = NewManager(append(slices.Clone(opts), WithRegistry(registry))...)
	customRegistry = registry
	return registry
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
