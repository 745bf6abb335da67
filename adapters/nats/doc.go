// Package nats carries actions across process boundaries over NATS.
//
// A [Dispatcher] publishes JSON-encoded actions to a subject; [Listen]
// subscribes to that subject and forwards decoded actions into any local
// [store.Dispatcher], typically an actor handle:
//
//	task, handle := actor.New(st, actor.Options{Capacity: 64})
//	sub, _ := nats.Listen(nc, "calc.actions", handle, nats.ListenerConfig{})
//	go task.Run(ctx)
//
//	remote := nats.NewDispatcher[Op](nc, "calc.actions")
//	remote.Dispatch(ctx, Add(5))
//
// Delivery is fire-and-forget with NATS at-most-once semantics; the
// mailbox's ordering and termination guarantees apply only from the point
// where the listener hands the action to the local dispatcher.
package nats
