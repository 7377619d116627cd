package classifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PredictionsTotal tracks total classifier predictions
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifier_predictions_total",
			Help: "Total number of classifier predictions made",
		},
		[]string{"source", "cache_hit"},
	)

	// PredictionLatency tracks classifier prediction latency
	PredictionLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "classifier_prediction_latency_seconds",
			Help:    "Classifier prediction latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CacheHitRatio tracks cache hit ratio
	CacheHitRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "classifier_cache_hit_ratio",
			Help: "Classifier prediction cache hit ratio",
		},
	)

	// HTTPErrorsTotal tracks HTTP errors by method
	HTTPErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifier_http_errors_total",
			Help: "Total number of classifier HTTP errors",
		},
		[]string{"method", "error_type"},
	)
)
