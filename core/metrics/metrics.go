// Package metrics defines the minimal instrumentation interfaces used by
// the core packages, keeping them decoupled from any concrete backend.
// adapters/prometheus provides a Prometheus implementation.
package metrics

// Counter is a monotonically increasing metric.
type Counter interface {
	Inc()
}

// Gauge is a metric that can go up and down.
type Gauge interface {
	Set(value float64)
}

// Timer measures the duration of one operation. ObserveDuration records the
// elapsed time since the timer was created.
type Timer interface {
	ObserveDuration()
}
