// Package metrics provides the centralized Prometheus metrics registry for Rosterfit.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	EvaluationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rosterfit",
		Name:      "evaluations_total",
		Help:      "Total number of playing-time evaluations by bucket",
	}, []string{"bucket"})
	EvaluationErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rosterfit",
		Name:      "evaluation_errors_total",
		Help:      "Total number of failed playing-time evaluations",
	})
	BenchmarkFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rosterfit",
		Name:      "benchmark_fallbacks_total",
		Help:      "Total number of evaluations that used the fallback tier benchmarks",
	})
	ClassifierRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rosterfit",
		Name:      "classifier_requests_total",
		Help:      "Total number of classifier requests by outcome",
	}, []string{"outcome"})
	RatingsRefreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rosterfit",
		Name:      "ratings_refresh_total",
		Help:      "Total number of ratings refresh runs by outcome",
	}, []string{"outcome"})
	RatingsRecordsRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rosterfit",
		Name:      "ratings_records_rejected_total",
		Help:      "Total number of ratings feed records rejected during normalization",
	})
)

// Gauge metrics
var (
	ClassifierCacheSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "rosterfit",
		Name:      "classifier_cache_size",
		Help:      "Number of entries in the classifier prediction cache",
	})
	ProgramsTracked = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "rosterfit",
		Name:      "programs_tracked",
		Help:      "Number of programs with current ratings",
	})
	LastRatingsRefreshTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "rosterfit",
		Name:      "last_ratings_refresh_timestamp_seconds",
		Help:      "Unix timestamp of the last successful ratings refresh",
	})
)

// Histogram metrics
var (
	EvaluationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "rosterfit",
		Name:      "evaluation_duration_seconds",
		Help:      "Duration of playing-time evaluations in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	ClassifierRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "rosterfit",
		Name:      "classifier_request_duration_seconds",
		Help:      "Duration of classifier requests in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	RatingsRefreshDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "rosterfit",
		Name:      "ratings_refresh_duration_seconds",
		Help:      "Duration of ratings refresh runs in seconds",
		Buckets:   []float64{1, 5, 10, 30, 60, 300, 600},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(EvaluationsTotal)
		registry.MustRegister(EvaluationErrorsTotal)
		registry.MustRegister(BenchmarkFallbacksTotal)
		registry.MustRegister(ClassifierRequestsTotal)
		registry.MustRegister(RatingsRefreshTotal)
		registry.MustRegister(RatingsRecordsRejectedTotal)

		registry.MustRegister(ClassifierCacheSize)
		registry.MustRegister(ProgramsTracked)
		registry.MustRegister(LastRatingsRefreshTimestamp)

		registry.MustRegister(EvaluationDuration)
		registry.MustRegister(ClassifierRequestDuration)
		registry.MustRegister(RatingsRefreshDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordEvaluation records a completed evaluation.
func RecordEvaluation(bucket string, durationSeconds float64) {
	EvaluationsTotal.WithLabelValues(bucket).Inc()
	EvaluationDuration.Observe(durationSeconds)
}

// RecordEvaluationError records a failed evaluation.
func RecordEvaluationError() {
	EvaluationErrorsTotal.Inc()
}

// RecordBenchmarkFallback records an evaluation that used fallback benchmarks.
func RecordBenchmarkFallback() {
	BenchmarkFallbacksTotal.Inc()
}

// RecordClassifierRequest records a classifier request by outcome.
func RecordClassifierRequest(outcome string, durationSeconds float64) {
	ClassifierRequestsTotal.WithLabelValues(outcome).Inc()
	ClassifierRequestDuration.Observe(durationSeconds)
}

// RecordRatingsRefresh records a ratings refresh run by outcome.
func RecordRatingsRefresh(outcome string, durationSeconds float64) {
	RatingsRefreshTotal.WithLabelValues(outcome).Inc()
	RatingsRefreshDuration.Observe(durationSeconds)
}

// UpdateClassifierCacheSize updates the classifier cache size gauge.
func UpdateClassifierCacheSize(count float64) {
	ClassifierCacheSize.Set(count)
}

// UpdateProgramsTracked updates the tracked programs gauge.
func UpdateProgramsTracked(count float64) {
	ProgramsTracked.Set(count)
}

// UpdateLastRatingsRefresh updates the last refresh timestamp gauge.
func UpdateLastRatingsRefresh(unixSeconds float64) {
	LastRatingsRefreshTimestamp.Set(unixSeconds)
}
