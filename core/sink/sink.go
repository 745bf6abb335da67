package sink

import (
	"context"
	"errors"

	"github.com/brunocodutra/reducer/core/store"
)

// ErrClosed is returned when sending to a closed sink.
var ErrClosed = errors.New("sink: closed")

// Sink consumes a stream of items with backpressure: Send blocks until the
// item is accepted, ctx is done, or the sink is closed.
type Sink[T any] interface {
	Send(ctx context.Context, item T) error
	Close() error
}

// Chan is a channel-backed sink. Capacity 0 is a rendezvous: Send blocks
// until a receiver takes the item.
//
// Like an actor handle, a Chan belongs to one producing goroutine; any
// number of goroutines may consume from Recv.
type Chan[T any] struct {
	ch     chan T
	closed bool
}

// NewChan returns a Chan with the given buffer capacity.
func NewChan[T any](capacity int) *Chan[T] {
	return &Chan[T]{ch: make(chan T, capacity)}
}

// Recv exposes the receive side for the consuming goroutine. The channel
// closes when the sink is closed.
func (c *Chan[T]) Recv() <-chan T { return c.ch }

func (c *Chan[T]) Send(ctx context.Context, item T) error {
	if c.closed {
		return ErrClosed
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case c.ch <- item:
		return nil
	}
}

func (c *Chan[T]) Close() error {
	if !c.closed {
		c.closed = true
		close(c.ch)
	}
	return nil
}

var _ Sink[any] = (*Chan[any])(nil)

// Dispatcher adapts a sink of actions to the [store.Dispatcher] contract:
// dispatching forwards the action to the sink.
func Dispatcher[A any](s Sink[A]) store.Dispatcher[A] {
	return dispatcher[A]{s}
}

type dispatcher[A any] struct{ sink Sink[A] }

func (d dispatcher[A]) Dispatch(ctx context.Context, action A) error {
	return d.sink.Send(ctx, action)
}
