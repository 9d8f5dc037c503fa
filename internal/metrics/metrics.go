// Package metrics provides Prometheus metrics for the page service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "homepage"

// Collector holds all Prometheus metrics.
type Collector struct {
	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Content metrics
	StreamSaves      *prometheus.CounterVec
	ValidationErrors *prometheus.CounterVec
}

// New creates a collector registered with reg. A nil reg falls back to the
// default registerer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "route"},
		),
		StreamSaves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stream_saves_total",
				Help:      "Stream replacement attempts by outcome",
			},
			[]string{"stream", "outcome"},
		),
		ValidationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_errors_total",
				Help:      "Validation failures reported to editors, by code",
			},
			[]string{"code"},
		),
	}
}

// Outcomes recorded on StreamSaves.
const (
	OutcomeSaved    = "saved"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// RecordStreamSave counts one stream replacement. Safe on a nil collector.
func (c *Collector) RecordStreamSave(stream, outcome string) {
	if c == nil {
		return
	}
	c.StreamSaves.WithLabelValues(stream, outcome).Inc()
}

// RecordValidationError counts one validation failure. Safe on a nil collector.
func (c *Collector) RecordValidationError(code string) {
	if c == nil {
		return
	}
	c.ValidationErrors.WithLabelValues(code).Inc()
}

// RecordRequest counts one HTTP request. Safe on a nil collector.
func (c *Collector) RecordRequest(method, route, status string, seconds float64) {
	if c == nil {
		return
	}
	c.RequestsTotal.WithLabelValues(method, route, status).Inc()
	c.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}
