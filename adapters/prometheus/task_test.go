package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocodutra/reducer/core/actor"
	"github.com/brunocodutra/reducer/core/store"
)

func TestNewTaskMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewTaskMetrics(reg)
	require.NotNil(t, m)

	timer := m.DispatchDuration("main.Increment")
	assert.NotNil(t, timer)
	timer.ObserveDuration()

	m.ActionsTotal("main.Increment", true).Inc()
	m.ActionsTotal("main.Increment", true).Inc()
	m.ActionsTotal("main.Increment", false).Inc()

	m.MailboxDepth("task-1").Set(3)

	assert.Equal(t, float64(2), testutil.ToFloat64(
		m.(*taskMetrics).actionsTotal.WithLabelValues("main.Increment", "true"),
	))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.(*taskMetrics).actionsTotal.WithLabelValues("main.Increment", "false"),
	))
	assert.Equal(t, float64(3), testutil.ToFloat64(
		m.(*taskMetrics).mailboxDepth.WithLabelValues("task-1"),
	))
}

func TestNewTaskMetrics_registerTwicePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewTaskMetrics(reg)
	require.Panics(t, func() { NewTaskMetrics(reg) })
}

type tally struct{ n int }

func (c *tally) Reduce(delta int) { c.n += delta }

func TestTaskMetrics_endToEnd(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewTaskMetrics(reg)

	st := store.New[int](&tally{}, store.ReactorFunc[*tally](func(*tally) error { return nil }))
	handle, completion := actor.Spawn(t.Context(), st, actor.Options{ID: "metrics-test", Metrics: m})

	for i := 0; i < 5; i++ {
		require.NoError(t, handle.Dispatch(t.Context(), 1))
	}
	require.NoError(t, handle.Close())
	require.NoError(t, completion.Wait(t.Context()))

	assert.Equal(t, float64(5), testutil.ToFloat64(
		m.(*taskMetrics).actionsTotal.WithLabelValues("int", "true"),
	))
}
