package actor

import "errors"

var (
	// ErrTerminated is returned by a Handle once the backing task has
	// stopped, gracefully or due to a reactor failure.
	ErrTerminated = errors.New("actor: task has terminated and cannot receive further actions")

	// ErrClosed is returned when dispatching through a handle that was
	// closed.
	ErrClosed = errors.New("actor: handle is closed")

	// ErrRunning is returned by Run when the task is already running.
	ErrRunning = errors.New("actor: task is already running")
)
