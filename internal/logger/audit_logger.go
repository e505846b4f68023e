// Package logger provides audit logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AuditLogger provides dedicated audit trail logging.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogConfigLoaded logs the effective configuration source at startup.
func (al *AuditLogger) LogConfigLoaded(path, environment string, cacheEnabled, metricsEnabled bool) {
	al.WithFields(logrus.Fields{
		"config_path":     path,
		"environment":     environment,
		"cache_enabled":   cacheEnabled,
		"metrics_enabled": metricsEnabled,
	}).Info("Configuration loaded")
}

// LogAPIRequest logs a served API request.
func (al *AuditLogger) LogAPIRequest(requestID, method, route string, status int, duration time.Duration, remoteAddr string) {
	al.WithFields(logrus.Fields{
		"request_id":  requestID,
		"method":      method,
		"route":       route,
		"status":      status,
		"duration_ms": float64(duration.Microseconds()) / 1000,
		"remote_addr": remoteAddr,
	}).Info("API request served")
}

// LogRateLimited logs a request rejected by the rate limiter.
func (al *AuditLogger) LogRateLimited(route, remoteAddr string) {
	al.WithFields(logrus.Fields{
		"route":       route,
		"remote_addr": remoteAddr,
	}).Warn("Request rate limited")
}

// LogShutdown logs a graceful shutdown with the reason.
func (al *AuditLogger) LogShutdown(reason string, uptime time.Duration) {
	al.WithFields(logrus.Fields{
		"reason":    reason,
		"uptime_ms": uptime.Milliseconds(),
	}).Info("Service shutting down")
}
