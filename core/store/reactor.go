package store

// Reactor is notified after every state transition.
//
// Reactors connect the state to the rest of the application. They may have
// side effects and may fail; the error is propagated unchanged to whoever
// dispatched the action (or, inside an actor, to its completion handle).
//
// React always receives the post-transition state and must not retain it
// beyond the call. Use core/cow snapshots to hand state off to other
// goroutines.
type Reactor[S any] interface {
	React(state S) error
}

// ReactorFunc adapts a closure to the Reactor interface.
type ReactorFunc[S any] func(state S) error

func (f ReactorFunc[S]) React(state S) error { return f(state) }

// Reactors fans a state transition out to several reactors.
//
// Reactors are notified in slice order and notification short-circuits on
// the first failure: reactors after the failing one are not called for that
// transition, and the first error is the one propagated. This keeps a
// faulty reactor from observing states its predecessors rejected.
type Reactors[S any] []Reactor[S]

func (rs Reactors[S]) React(state S) error {
	for _, r := range rs {
		if err := r.React(state); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ Reactor[any] = (ReactorFunc[any])(nil)
	_ Reactor[any] = (Reactors[any])(nil)
)
