package actor

import (
	"context"
	"sync/atomic"

	"github.com/brunocodutra/reducer/core/store"
)

// mailbox is the send side shared by all clones of a handle. refs counts
// the live clones; the channel closes when the last one is closed.
type mailbox[A any] struct {
	ch   chan envelope[A]
	refs atomic.Int64
}

// Handle is a cloneable capability to enqueue actions into a task's
// mailbox. Its lifetime is independent of the task: any number of clones
// may exist and may be sent to other goroutines.
//
// An individual handle is owned by one goroutine; clone it rather than
// sharing it.
type Handle[A any] struct {
	mb     *mailbox[A]
	res    *result
	closed bool
}

func newHandle[A any](ch chan envelope[A], res *result) *Handle[A] {
	mb := &mailbox[A]{ch: ch}
	mb.refs.Store(1)
	return &Handle[A]{mb: mb, res: res}
}

// Clone returns an independent handle enqueueing into the same mailbox.
// Cloning a closed handle yields a closed handle.
func (h *Handle[A]) Clone() *Handle[A] {
	if h.closed {
		return &Handle[A]{mb: h.mb, res: h.res, closed: true}
	}
	h.mb.refs.Add(1)
	return &Handle[A]{mb: h.mb, res: h.res}
}

// Close drops this handle. Closing the last live clone closes the mailbox,
// signalling orderly shutdown: the task dispatches every action accepted so
// far and then terminates with nil. Close is idempotent.
func (h *Handle[A]) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	if h.mb.refs.Add(-1) == 0 {
		close(h.mb.ch)
	}
	return nil
}

// Dispatch enqueues the action, blocking while the mailbox is at capacity.
//
// A nil result means the action is guaranteed to eventually be presented to
// the store, provided the task keeps running; it does not mean the action
// has been applied. Dispatch fails with [ErrTerminated] once the task has
// stopped, with [ErrClosed] on a closed handle, and with ctx.Err() when the
// caller gives up waiting for capacity.
func (h *Handle[A]) Dispatch(ctx context.Context, action A) error {
	return h.send(ctx, envelope[A]{action: action})
}

// Call dispatches the action and then waits until it was applied to the
// state. Note that a reactor failure still surfaces through the task's
// completion, not here: Call reports delivery, not the reactor's verdict.
func (h *Handle[A]) Call(ctx context.Context, action A) error {
	applied := make(chan struct{})
	if err := h.send(ctx, envelope[A]{action: action, applied: applied}); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-applied:
		return nil
	case <-h.res.done:
		// The task may have applied the action on its way out.
		select {
		case <-applied:
			return nil
		default:
			return ErrTerminated
		}
	}
}

func (h *Handle[A]) send(ctx context.Context, env envelope[A]) error {
	if h.closed {
		return ErrClosed
	}

	// Once termination is observable, fail deterministically rather than
	// racing a buffered enqueue nobody will ever drain.
	select {
	case <-h.res.done:
		return ErrTerminated
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-h.res.done:
		return ErrTerminated
	case h.mb.ch <- env:
		return nil
	}
}

var _ store.Dispatcher[any] = (*Handle[any])(nil)
