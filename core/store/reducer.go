package store

// Reducer is implemented by state types to encode their transitions.
//
// Reduce is expected to be pure with respect to the state it owns and must
// never fail. An effective way to handle illegal transitions is to make them
// idempotent, i.e. to leave the state unchanged.
type Reducer[A any] interface {
	// Reduce advances the state given an action.
	Reduce(action A)
}

// Reducers broadcasts an action to several independent reducers, allowing
// state logic to be split into smaller pieces.
//
// Sub-reducers are invoked in slice order. Since Reduce is required to be
// pure and infallible, the order has no observable effect.
type Reducers[A any] []Reducer[A]

func (rs Reducers[A]) Reduce(action A) {
	for _, r := range rs {
		r.Reduce(action)
	}
}

var _ Reducer[any] = (Reducers[any])(nil)
