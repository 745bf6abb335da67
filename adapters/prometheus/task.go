package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/brunocodutra/reducer/core/actor"
	"github.com/brunocodutra/reducer/core/metrics"
)

// taskMetrics implements actor.Metrics using Prometheus.
type taskMetrics struct {
	dispatchDuration *prometheus.HistogramVec
	actionsTotal     *prometheus.CounterVec
	mailboxDepth     *prometheus.GaugeVec
}

// NewTaskMetrics registers and returns a Prometheus implementation of
// actor.Metrics.
func NewTaskMetrics(reg prometheus.Registerer) actor.Metrics {
	m := &taskMetrics{
		dispatchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reducer_dispatch_duration_seconds",
			Help:    "Store dispatch time in seconds",
			Buckets: defaultBuckets,
		}, []string{"action_type"}),

		actionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reducer_actions_total",
			Help: "Total number of actions dispatched to the store",
		}, []string{"action_type", "success"}),

		mailboxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "reducer_mailbox_depth",
			Help: "Number of actions buffered ahead of the task",
		}, []string{"task_id"}),
	}

	reg.MustRegister(
		m.dispatchDuration,
		m.actionsTotal,
		m.mailboxDepth,
	)

	return m
}

func (m *taskMetrics) DispatchDuration(actionType string) metrics.Timer {
	return newTimer(m.dispatchDuration.WithLabelValues(actionType))
}

func (m *taskMetrics) ActionsTotal(actionType string, success bool) metrics.Counter {
	return m.actionsTotal.WithLabelValues(actionType, boolToStr(success))
}

func (m *taskMetrics) MailboxDepth(taskID string) metrics.Gauge {
	return m.mailboxDepth.WithLabelValues(taskID)
}

var _ actor.Metrics = (*taskMetrics)(nil)
