package actor

import (
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Options configures a task. The zero value is a valid configuration.
type Options struct {
	// Capacity bounds how many actions may be buffered ahead of the task.
	// The default of 0 is a rendezvous mailbox: Dispatch blocks until the
	// task is ready to accept the action.
	Capacity int

	// ID identifies the task in logs and metrics. Defaults to a random id.
	ID string

	// Logger for diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics receives task instrumentation. Defaults to NopMetrics().
	Metrics Metrics
}

func (o Options) withDefaults() Options {
	if o.ID == "" {
		o.ID = "task-" + gonanoid.Must(8)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Metrics == nil {
		o.Metrics = NopMetrics()
	}
	return o
}
