package repository

// Metrics records operational counters for chart computation. Implemented by
// pkg/metrics with Prometheus.
type Metrics interface {
	RecordChart(kind string)
	RecordAspects(kind string, count int)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
