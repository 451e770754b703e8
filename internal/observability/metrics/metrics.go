// Package metrics provides Prometheus metrics for observability.
//
// In Lambda the registry only backs the counters referenced by the handlers;
// the scrape endpoint is served by the local runner.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "audio_summarizer"

// Metrics holds all Prometheus metrics for the pipeline.
type Metrics struct {
	// Ingest metrics
	JobsSubmitted     prometheus.Counter
	JobSubmitFailures prometheus.Counter
	IngestSkipped     prometheus.Counter

	// Normalizer metrics
	NormalizeDuration prometheus.Histogram
	TranscriptLines   prometheus.Histogram

	// Model invocation metrics
	ModelInvocations        prometheus.Counter
	ModelInvocationFailures prometheus.Counter
	ModelLatency            prometheus.Histogram

	// Storage metrics
	StorageOps *prometheus.CounterVec

	// Lifecycle event publish metrics
	EventPublishTotal   *prometheus.CounterVec
	EventPublishLatency prometheus.Histogram
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		JobsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_submitted_total",
			Help:      "Total number of transcription jobs submitted",
		}),
		JobSubmitFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_submit_failures_total",
			Help:      "Total number of failed transcription job submissions",
		}),
		IngestSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_skipped_total",
			Help:      "Total number of ingest events skipped (folder keys)",
		}),
		NormalizeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "normalize_duration_seconds",
			Help:      "Time spent normalizing raw transcripts",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		TranscriptLines: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transcript_lines",
			Help:      "Speaker-grouped lines per normalized transcript",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
		ModelInvocations: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_invocations_total",
			Help:      "Total number of model invocations",
		}),
		ModelInvocationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_invocation_failures_total",
			Help:      "Total number of failed model invocations",
		}),
		ModelLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_latency_seconds",
			Help:      "Latency of synchronous model invocations",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 90},
		}),
		StorageOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_ops_total",
			Help:      "Object store operations by op and result",
		}, []string{"op", "result"}),
		EventPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_total",
			Help:      "Lifecycle events published by type and result",
		}, []string{"eventType", "result"}),
		EventPublishLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "event_publish_latency_seconds",
			Help:      "Latency of lifecycle event publishes",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}
}

// RecordStorageOp records one object store operation.
func (m *Metrics) RecordStorageOp(op string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.StorageOps.WithLabelValues(op, result).Inc()
}

// RecordModelInvocation records one model call and its latency.
func (m *Metrics) RecordModelInvocation(err error, duration time.Duration) {
	m.ModelInvocations.Inc()
	if err != nil {
		m.ModelInvocationFailures.Inc()
		return
	}
	m.ModelLatency.Observe(duration.Seconds())
}

// RecordPublish records one lifecycle event publish attempt.
func (m *Metrics) RecordPublish(eventType string, err error, duration time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.EventPublishTotal.WithLabelValues(eventType, result).Inc()
	m.EventPublishLatency.Observe(duration.Seconds())
}
