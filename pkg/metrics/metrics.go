// Package metrics exposes Prometheus instrumentation for the telemetry
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Consumer loop metrics.

	MessagesConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "telemetry_messages_consumed_total",
		Help: "Total number of telemetry messages fetched from the stream",
	}, []string{"subject"})

	MessagesDiscarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "telemetry_messages_discarded_total",
		Help: "Total number of messages discarded by the validation gate",
	}, []string{"reason"})

	MessagesRetried = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_messages_retried_total",
		Help: "Total number of messages nak'd back to the stream for redelivery",
	})

	ProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "telemetry_message_processing_duration_seconds",
		Help:    "End-to-end per-message processing time",
		Buckets: prometheus.DefBuckets,
	})

	// ML inference metrics.

	MLRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ml_inference_requests_total",
		Help: "Total number of inference service calls",
	}, []string{"endpoint", "status"})

	// Batching window metrics.

	BatchFlushes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "structure_batch_flushes_total",
		Help: "Total number of batch window flushes",
	}, []string{"status"})

	BatchPending = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "structure_batch_pending_readings",
		Help: "Readings currently buffered in the batch window per structure",
	}, []string{"structure_id"})

	// Rule-based anomaly metrics.

	UtilityAnomalies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "utility_anomalies_created_total",
		Help: "Total number of rule-based anomalies persisted",
	}, []string{"anomaly_type", "severity"})
)
