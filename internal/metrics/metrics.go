// Package metrics provides centralized Prometheus metrics registry for the prediction service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "match_oracle"

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Total number of predictions by variant and consensus tier",
	}, []string{"variant", "tier"})
	ValueBetsDetected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "value_bets_detected_total",
		Help:      "Total number of value bets detected by tier",
	}, []string{"tier"})
	KellyRecommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "kelly_recommendations_total",
		Help:      "Total number of stake recommendations by tier",
	}, []string{"tier"})
)

// Gauge metrics
var (
	CacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "prediction_cache_hit_ratio",
		Help:      "Prediction cache hit ratio",
	})
)

// Histogram metrics
var (
	PredictionConfidence = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_confidence",
		Help:      "Aggregate confidence of predictions",
		Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	}, []string{"variant"})
	PredictionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_duration_seconds",
		Help:      "Duration of prediction runs in seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	}, []string{"variant"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register prediction metrics
		registry.MustRegister(PredictionsTotal)
		registry.MustRegister(ValueBetsDetected)
		registry.MustRegister(KellyRecommendationsTotal)
		registry.MustRegister(CacheHitRatio)
		registry.MustRegister(PredictionConfidence)
		registry.MustRegister(PredictionDuration)

		// Register estimator metrics
		registry.MustRegister(EstimatorVotesTotal)
		registry.MustRegister(EstimatorAgreementTotal)

		// Register API metrics
		registry.MustRegister(APIRequestsTotal)
		registry.MustRegister(APIRequestDuration)
		registry.MustRegister(RateLimitedTotal)
		registry.MustRegister(WebsocketConnections)
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

// RecordPrediction records a finished prediction.
func RecordPrediction(variant, tier string, confidence, durationSeconds float64) {
	PredictionsTotal.WithLabelValues(variant, tier).Inc()
	PredictionConfidence.WithLabelValues(variant).Observe(confidence)
	PredictionDuration.WithLabelValues(variant).Observe(durationSeconds)
}

// RecordValueBet records a detected value bet.
func RecordValueBet(tier string) {
	ValueBetsDetected.WithLabelValues(tier).Inc()
}

// RecordKellyRecommendation records a stake recommendation.
func RecordKellyRecommendation(tier string) {
	KellyRecommendationsTotal.WithLabelValues(tier).Inc()
}

// UpdateCacheHitRatio updates the cache hit ratio gauge.
func UpdateCacheHitRatio(ratio float64) {
	CacheHitRatio.Set(ratio)
}
