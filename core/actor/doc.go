// Package actor turns a store into a concurrently-dispatchable unit of
// asynchronous work.
//
// A [Task] takes exclusive ownership of a [store.Store] and drains a
// mailbox of actions, dispatching them one at a time in FIFO order. There is
// no internal locking: exclusive ownership, not mutual exclusion, is what
// prevents data races on the state.
//
// Producers dispatch through a cloneable [Handle]:
//
//	task, handle := actor.New(store.New[Op](&Calculator{}, console), actor.Options{})
//
//	go task.Run(ctx) // or hand the task to any scheduler
//
//	handle.Dispatch(ctx, Add(5))
//	handle.Close() // closing the last handle shuts the task down gracefully
//
// The task terminates
//   - with nil once the last handle is closed and every accepted action has
//     been dispatched,
//   - with the reactor's error as soon as one dispatch fails; actions still
//     buffered in the mailbox at that point are dropped, and
//   - with ctx.Err() when its context is cancelled, at the next time it
//     would otherwise await the mailbox.
//
// After termination every Dispatch fails with [ErrTerminated]; it never
// silently succeeds. The terminal result surfaces exactly once, through the
// [Completion] returned by [Spawn] (or the return value of [Task.Run]).
//
// The mailbox capacity defaults to zero, a rendezvous handoff: Dispatch
// suspends the producer until the task is ready to accept the action, which
// gives natural backpressure and keeps actions from piling up unseen.
package actor
