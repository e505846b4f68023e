// Package metrics defines API-specific metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// API counter vectors
var (
	APIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of API requests by route and status code",
	}, []string{"route", "status"})

	RateLimitedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter",
	})
)

// API histogram vectors
var (
	APIRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of API requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

// API gauges
var (
	WebsocketConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "websocket_connections",
		Help:      "Number of open live-prediction websocket connections",
	})
)

// RecordAPIRequest records a served API request.
func RecordAPIRequest(route, status string, durationSeconds float64) {
	APIRequestsTotal.WithLabelValues(route, status).Inc()
	APIRequestDuration.WithLabelValues(route).Observe(durationSeconds)
}

// RecordRateLimited records a rejected request.
func RecordRateLimited() {
	RateLimitedTotal.Inc()
}

// WebsocketOpened increments the open connection gauge.
func WebsocketOpened() {
	WebsocketConnections.Inc()
}

// WebsocketClosed decrements the open connection gauge.
func WebsocketClosed() {
	WebsocketConnections.Dec()
}
