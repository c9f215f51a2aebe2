package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	chartsTotal  *prometheus.CounterVec
	aspectsFound *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		chartsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astroserve_charts_total",
				Help: "Total number of charts computed",
			},
			[]string{"kind"},
		),
		aspectsFound: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astroserve_aspects_found_total",
				Help: "Total number of aspects detected",
			},
			[]string{"kind"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astroserve_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "astroserve_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordChart counts one computed chart of the given kind.
func (r *Recorder) RecordChart(kind string) {
	r.chartsTotal.WithLabelValues(kind).Inc()
}

// RecordAspects counts aspects detected for a chart kind.
func (r *Recorder) RecordAspects(kind string, count int) {
	r.aspectsFound.WithLabelValues(kind).Add(float64(count))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
