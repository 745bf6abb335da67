package sink

import (
	"context"

	"github.com/brunocodutra/reducer/core/store"
)

// FromReactor views a reactor as a sink of states.
//
// Reactor calls are synchronous, so the sink is always ready: Send simply
// invokes React and returns its result. After Close, Send fails with
// [ErrClosed]; flushing is a no-op throughout.
func FromReactor[S any](r store.Reactor[S]) Sink[S] {
	return &reactorSink[S]{reactor: r}
}

type reactorSink[S any] struct {
	reactor store.Reactor[S]
	closed  bool
}

func (s *reactorSink[S]) Send(_ context.Context, state S) error {
	if s.closed {
		return ErrClosed
	}
	return s.reactor.React(state)
}

func (s *reactorSink[S]) Close() error {
	s.closed = true
	return nil
}

// ToReactor views a sink as a reactor.
//
// React blocks the calling goroutine until the consumer accepts the state
// or ctx is done; ctx bounds every notification made through the returned
// reactor. Inside an actor task this shows up as ordinary backpressure: the
// task suspends on the slow consumer, producers suspend on the mailbox.
func ToReactor[S any](ctx context.Context, s Sink[S]) store.Reactor[S] {
	return store.ReactorFunc[S](func(state S) error {
		return s.Send(ctx, state)
	})
}
