// Package metrics provides Prometheus metrics collection for the webster
// service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and
	// status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status
	// code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// StepCompletionsTotal tracks checklist step completions by outcome.
	StepCompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checklist_step_completions_total",
			Help: "Total number of checklist step completion attempts",
		},
		[]string{"outcome"},
	)

	// ScanVerificationsTotal tracks barcode verification attempts by outcome.
	ScanVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan_verifications_total",
			Help: "Total number of barcode verification attempts",
		},
		[]string{"outcome"},
	)

	// PackTransitionsTotal tracks pack status transitions produced by the
	// derivation rule.
	PackTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pack_status_transitions_total",
			Help: "Total number of pack status transitions",
		},
		[]string{"to"},
	)

	// WorkflowDuration tracks end-to-end workflow operation duration.
	WorkflowDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workflow_operation_duration_seconds",
			Help:    "Workflow operation duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"operation"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordStepCompletion records one checklist completion attempt.
func RecordStepCompletion(outcome string, duration time.Duration) {
	StepCompletionsTotal.WithLabelValues(outcome).Inc()
	WorkflowDuration.WithLabelValues("complete_step").Observe(duration.Seconds())
}

// RecordScanVerification records one barcode verification attempt.
func RecordScanVerification(outcome string, duration time.Duration) {
	ScanVerificationsTotal.WithLabelValues(outcome).Inc()
	WorkflowDuration.WithLabelValues("verify_barcode").Observe(duration.Seconds())
}

// RecordPackTransition records a status transition produced by derivation.
func RecordPackTransition(to string) {
	PackTransitionsTotal.WithLabelValues(to).Inc()
}
