package actor

import "github.com/brunocodutra/reducer/core/metrics"

// Metrics is the instrumentation hook for tasks. All methods must be safe
// for concurrent use. adapters/prometheus provides an implementation.
type Metrics interface {
	// DispatchDuration times one store dispatch, labelled by action type.
	DispatchDuration(actionType string) metrics.Timer
	// ActionsTotal counts dispatched actions by type and reactor verdict.
	ActionsTotal(actionType string, success bool) metrics.Counter
	// MailboxDepth gauges the number of actions buffered ahead of the task.
	MailboxDepth(taskID string) metrics.Gauge
}

type nopMetrics struct{}

func (nopMetrics) DispatchDuration(string) metrics.Timer     { return metrics.NopTimer() }
func (nopMetrics) ActionsTotal(string, bool) metrics.Counter { return metrics.NopCounter() }
func (nopMetrics) MailboxDepth(string) metrics.Gauge         { return metrics.NopGauge() }

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
