// Package sink bridges the reactor contract to push-based, backpressured
// consumers.
//
// A [Sink] accepts items one at a time; Send blocks until the consumer is
// ready. The bridges run both ways:
//
//   - [FromReactor] views a reactor as a sink of states. Reactor calls are
//     synchronous, so the sink is always ready.
//   - [ToReactor] views a sink as a reactor. React blocks the calling
//     goroutine until the consumer accepts the state; this is the only
//     suspending call in the core and it suspends only its caller.
//
// [Chan] is the common consumer: a channel-backed sink whose receive side
// is handed to another goroutine, e.g. a render loop:
//
//	frames := sink.NewChan[Scene](0)
//	go render(frames.Recv())
//
//	s := store.New[Action](scene, sink.ToReactor(ctx, frames))
package sink
