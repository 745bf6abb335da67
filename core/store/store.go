package store

import "context"

// Dispatcher is implemented by types that accept actions.
//
// A [Store] dispatches synchronously and ignores ctx. Asynchronous
// implementations (actor handles, sinks, remote adapters) block until the
// action is accepted or ctx is done.
type Dispatcher[A any] interface {
	Dispatch(ctx context.Context, action A) error
}

// Store is a reactive state container pairing one state with one reactor.
//
// A Store is not internally synchronized: it is owned by exactly one
// goroutine at a time, typically the actor task it is handed to.
type Store[A any, S Reducer[A]] struct {
	state   S
	reactor Reactor[S]
}

// New constructs a Store from the initial state and a reactor.
//
// The action type cannot be inferred from the arguments and is given
// explicitly:
//
//	s := store.New[Op](&Calculator{}, console)
func New[A any, S Reducer[A]](state S, reactor Reactor[S]) *Store[A, S] {
	return &Store[A, S]{state: state, reactor: reactor}
}

// State returns the current state.
//
// The returned value must be treated as read-only; mutating it bypasses the
// reactor notification contract.
func (s *Store[A, S]) State() S { return s.state }

// Subscribe replaces the reactor and returns the previous one.
//
// Safe only while the caller has exclusive access to the Store, which is
// guaranteed inside an actor task and in the purely synchronous case.
func (s *Store[A, S]) Subscribe(reactor Reactor[S]) Reactor[S] {
	old := s.reactor
	s.reactor = reactor
	return old
}

// Dispatch advances the state through Reduce and notifies the reactor with
// the new state, returning the reactor's result unchanged.
//
// The state is always updated, even when the reactor subsequently fails.
func (s *Store[A, S]) Dispatch(_ context.Context, action A) error {
	s.state.Reduce(action)
	return s.reactor.React(s.state)
}

var _ Dispatcher[any] = (*Store[any, Reducer[any]])(nil)
