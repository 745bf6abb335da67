package actor

import (
	"context"
	"sync/atomic"

	"github.com/brunocodutra/reducer/core/store"
)

// Completion represents the eventual result of a spawned task.
//
// A caller that stops caring about the task should call Cancel (or Detach
// first, to let the task run to completion independently of the caller's
// own lifetime). The terminal error is reported here and nowhere else.
type Completion struct {
	res      *result
	cancel   context.CancelFunc
	detached atomic.Bool
}

// Done is closed when the task has terminated.
func (c *Completion) Done() <-chan struct{} { return c.res.done }

// Err returns the terminal result: nil for graceful shutdown, the reactor's
// error on failure, or ctx.Err() after cancellation. It returns nil while
// the task is still running; check Done first.
func (c *Completion) Err() error {
	select {
	case <-c.res.done:
		return c.res.err
	default:
		return nil
	}
}

// Wait blocks until the task terminates and returns its terminal result, or
// until ctx is done.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.res.done:
		return c.res.err
	}
}

// Cancel requests cooperative cancellation, honored the next time the task
// would otherwise await its mailbox. Cancel is a no-op after Detach.
func (c *Completion) Cancel() {
	if c.detached.Load() {
		return
	}
	c.cancel()
}

// Detach severs the task from this handle: subsequent Cancel calls are
// ignored and the task keeps processing actions until its mailbox closes or
// a dispatch fails. Use it when delivery must outlive the caller.
func (c *Completion) Detach() { c.detached.Store(true) }

// Spawn wraps the store in a task, schedules it on a new goroutine and
// returns the dispatch handle along with the task's completion.
func Spawn[A any, S store.Reducer[A]](ctx context.Context, st *store.Store[A, S], opt Options) (*Handle[A], *Completion) {
	task, handle := New(st, opt)

	ctx, cancel := context.WithCancel(ctx)
	completion := &Completion{res: task.res, cancel: cancel}

	go func() {
		defer cancel()
		_ = task.Run(ctx)
	}()

	return handle, completion
}
