package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// cloud-top estimation pipeline.
type Metrics struct {
	PixelsConsumed    prometheus.Counter
	EstimatesProduced prometheus.Counter
	TransformErrors   prometheus.Counter
	PipelineRunning   prometheus.Gauge

	// Estimate quality metrics.
	InvalidEstimates    prometheus.Counter
	OutOfEnvelopePixels prometheus.Counter

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Archive metrics.
	ArchiveEnabled prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		PixelsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cloudtop_etl",
			Name:      "pixels_consumed_total",
			Help:      "Total pixel observations read from the source topic.",
		}),
		EstimatesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cloudtop_etl",
			Name:      "estimates_produced_total",
			Help:      "Total cloud top estimates written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cloudtop_etl",
			Name:      "transform_errors_total",
			Help:      "Total observations that could not be parsed or serialized.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cloudtop_etl",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		InvalidEstimates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cloudtop_etl",
			Name:      "invalid_estimates_total",
			Help:      "Estimates where the thermodynamic chain produced a non-numeric result.",
		}),
		OutOfEnvelopePixels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cloudtop_etl",
			Name:      "out_of_envelope_pixels_total",
			Help:      "Pixels whose corrected BT fell outside the validated -15..-75 °C envelope.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cloudtop_etl",
			Name:      "batch_size",
			Help:      "Number of observations per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cloudtop_etl",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ArchiveEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cloudtop_etl",
			Name:      "archive_enabled",
			Help:      "1 when the local estimate archive is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.PixelsConsumed,
		m.EstimatesProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.InvalidEstimates,
		m.OutOfEnvelopePixels,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.ArchiveEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		PixelsConsumed:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cloudtop_etl", Name: "pixels_consumed_total"}),
		EstimatesProduced:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cloudtop_etl", Name: "estimates_produced_total"}),
		TransformErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cloudtop_etl", Name: "transform_errors_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "cloudtop_etl", Name: "pipeline_running"}),
		InvalidEstimates:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cloudtop_etl", Name: "invalid_estimates_total"}),
		OutOfEnvelopePixels:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cloudtop_etl", Name: "out_of_envelope_pixels_total"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "cloudtop_etl", Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "cloudtop_etl", Name: "batch_processing_duration_seconds"}),
		ArchiveEnabled:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "cloudtop_etl", Name: "archive_enabled"}),
	}
}
