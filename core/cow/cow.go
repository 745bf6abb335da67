package cow

import "sync/atomic"

// Cloner is implemented by values that can produce a deep copy of
// themselves. Clone is only invoked when a mutation finds the value aliased
// by an outstanding snapshot.
type Cloner[T any] interface {
	Clone() T
}

// box is the shared allocation behind one or more Cell handles.
type box[T any] struct {
	refs  atomic.Int64
	gen   uint64
	value T
}

// Cell is one handle onto a shared, copy-on-write value.
//
// Handles are not safe for concurrent use; each goroutine works with its
// own handle obtained via [Cell.Retain]. The value itself may be read
// concurrently through any number of handles.
type Cell[T Cloner[T]] struct {
	b        *box[T]
	released bool
}

// New wraps value in a fresh Cell with no outstanding snapshots.
func New[T Cloner[T]](value T) *Cell[T] {
	b := &box[T]{value: value}
	b.refs.Store(1)
	return &Cell[T]{b: b}
}

// Retain returns a new handle sharing the current value, typically to hand
// a snapshot to another goroutine. The snapshot observes the value as of
// this call; later mutations through other handles do not affect it.
func (c *Cell[T]) Retain() *Cell[T] {
	c.b.refs.Add(1)
	return &Cell[T]{b: c.b}
}

// Release drops this handle. Releasing is idempotent per handle; a handle
// must not be used after it was released.
func (c *Cell[T]) Release() {
	if c.released {
		return
	}
	c.released = true
	c.b.refs.Add(-1)
}

// Value returns the wrapped value. Callers must treat it as read-only;
// mutations go through [Cell.Mutate].
func (c *Cell[T]) Value() T { return c.b.value }

// Shared reports whether another handle currently aliases the value, i.e.
// whether the next mutation will have to clone.
func (c *Cell[T]) Shared() bool { return c.b.refs.Load() > 1 }

// Generation identifies the allocation backing this handle. It changes
// exactly when a mutation had to clone, which lets tests prove that a sole
// owner mutates in place.
func (c *Cell[T]) Generation() uint64 { return c.b.gen }

// Mutate applies fn to the wrapped value.
//
// If this handle is the sole owner, the value is mutated in place with no
// allocation. Otherwise the value is cloned, fn is applied to the clone and
// this handle is swapped to the fresh copy; outstanding snapshots keep the
// pre-mutation value.
func (c *Cell[T]) Mutate(fn func(*T)) {
	if c.b.refs.Load() == 1 {
		fn(&c.b.value)
		return
	}

	fresh := &box[T]{gen: c.b.gen + 1, value: c.b.value.Clone()}
	fresh.refs.Store(1)
	fn(&fresh.value)

	c.b.refs.Add(-1)
	c.b = fresh
}
