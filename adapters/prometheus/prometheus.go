// Package prometheus backs the core metrics interfaces with Prometheus
// collectors.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/brunocodutra/reducer/core/metrics"
)

// Default histogram buckets for dispatch latency (in seconds).
var defaultBuckets = []float64{
	.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1,
}

// timer wraps a Prometheus observer to implement metrics.Timer.
type timer struct {
	o     prometheus.Observer
	start time.Time
}

func newTimer(o prometheus.Observer) metrics.Timer {
	return &timer{o: o, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.o.Observe(time.Since(t.start).Seconds())
}

func boolToStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
