package cow

import "github.com/brunocodutra/reducer/core/store"

// State adapts a copy-on-write [Cell] to the [store.Reducer] contract, so a
// store (or the actor task owning it) can run directly on shared state.
//
// Reactors receive the State itself and use [State.Snapshot] to hand the
// current value to other goroutines without blocking future dispatches.
type State[A any, T Cloner[T]] struct {
	cell       *Cell[T]
	transition func(*T, A)
}

// NewState wraps value in a Cell governed by the given transition function.
func NewState[A any, T Cloner[T]](value T, transition func(*T, A)) *State[A, T] {
	return &State[A, T]{cell: New(value), transition: transition}
}

// Reduce applies the transition under copy-on-write semantics.
func (s *State[A, T]) Reduce(action A) {
	s.cell.Mutate(func(t *T) { s.transition(t, action) })
}

// Value returns the current value (read-only).
func (s *State[A, T]) Value() T { return s.cell.Value() }

// Snapshot retains the current value and returns the holding handle. The
// caller releases it when done.
func (s *State[A, T]) Snapshot() *Cell[T] { return s.cell.Retain() }

var _ store.Reducer[any] = (*State[any, cloneless])(nil)

// cloneless exists only to instantiate the interface assertion above.
type cloneless struct{}

func (c cloneless) Clone() cloneless { return c }
