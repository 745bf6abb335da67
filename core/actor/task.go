package actor

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/brunocodutra/reducer/core/store"
	"github.com/brunocodutra/reducer/internal/reflector"
)

// envelope is one mailbox item: an action plus an optional signal closed
// once the action reached the store.
type envelope[A any] struct {
	action  A
	applied chan struct{}
}

// result carries the terminal outcome of a task. err is written exactly
// once, before done is closed.
type result struct {
	done chan struct{}
	err  error
}

// Task owns a store and drains its mailbox. Exactly one task ever holds a
// given store; nothing else may dispatch on it once the task exists.
//
// A Task is inert until its Run method is invoked; handing it to a
// scheduler is the caller's job (or use [Spawn]).
type Task[A any, S store.Reducer[A]] struct {
	id      string
	store   *store.Store[A, S]
	mailbox chan envelope[A]
	log     *slog.Logger
	metrics Metrics
	res     *result
	started atomic.Bool
}

// New wraps the store in a task and returns it along with the first
// dispatch handle. The handle may be cloned without bound.
func New[A any, S store.Reducer[A]](st *store.Store[A, S], opt Options) (*Task[A, S], *Handle[A]) {
	opt = opt.withDefaults()

	t := &Task[A, S]{
		id:      opt.ID,
		store:   st,
		mailbox: make(chan envelope[A], opt.Capacity),
		log:     opt.Logger.With(slog.String("task", opt.ID)),
		metrics: opt.Metrics,
		res:     &result{done: make(chan struct{})},
	}

	return t, newHandle(t.mailbox, t.res)
}

// ID returns the task identity used in logs and metrics.
func (t *Task[A, S]) ID() string { return t.id }

// Run processes actions until the mailbox is closed and drained, a dispatch
// fails, or ctx is cancelled. It returns nil on graceful shutdown, the
// reactor's error on failure, or ctx.Err() on cancellation.
//
// Run may be called at most once.
func (t *Task[A, S]) Run(ctx context.Context) error {
	if !t.started.CompareAndSwap(false, true) {
		return ErrRunning
	}

	t.log.Debug("task running")

	for {
		select {
		case <-ctx.Done():
			return t.finish(ctx.Err())
		case env, ok := <-t.mailbox:
			if !ok {
				// Every action ever accepted has been dispatched.
				return t.finish(nil)
			}
			if err := t.dispatch(ctx, env); err != nil {
				return t.finish(err)
			}
		}
	}
}

func (t *Task[A, S]) dispatch(ctx context.Context, env envelope[A]) error {
	actionType := reflector.TypeNameOf(env.action)

	tmr := t.metrics.DispatchDuration(actionType)
	err := t.store.Dispatch(ctx, env.action)
	tmr.ObserveDuration()

	t.metrics.MailboxDepth(t.id).Set(float64(len(t.mailbox)))
	t.metrics.ActionsTotal(actionType, err == nil).Inc()

	// The state advanced regardless of the reactor's verdict.
	if env.applied != nil {
		close(env.applied)
	}

	if err != nil {
		t.log.Error("reactor failed",
			slog.String("action", actionType),
			slog.Any("error", err),
		)
	}
	return err
}

func (t *Task[A, S]) finish(err error) error {
	t.res.err = err
	close(t.res.done)
	t.log.Debug("task stopped", slog.Any("error", err))
	return err
}
