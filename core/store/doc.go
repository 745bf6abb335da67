// Package store implements a predictable reactive state container.
//
// The only way to mutate the state managed by a [Store] is to dispatch
// actions on it. Each dispatch advances the state through the state type's
// [Reducer] implementation and then notifies the associated [Reactor] with
// the post-transition state.
//
//	type Calculator struct{ Value int }
//
//	type Op func(int) int
//
//	func (c *Calculator) Reduce(op Op) { c.Value = op(c.Value) }
//
//	console := store.ReactorFunc[*Calculator](func(c *Calculator) error {
//	    _, err := fmt.Println(c.Value)
//	    return err
//	})
//
//	s := store.New[Op](&Calculator{}, console)
//
//	s.Dispatch(ctx, func(v int) int { return v + 5 }) // prints "5"
//	s.Dispatch(ctx, func(v int) int { return v * 3 }) // prints "15"
//
// A Store on its own is strictly synchronous and single-owner. To share it
// across goroutines, hand it to core/actor, which serializes concurrent
// dispatch requests through a mailbox.
package store
