package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingReactor counts calls and optionally fails each one.
type countingReactor struct {
	calls int
	err   error
}

func (c *countingReactor) React(*calculator) error {
	c.calls++
	return c.err
}

func TestReactors_order(t *testing.T) {
	var order []string
	named := func(name string) Reactor[*calculator] {
		return ReactorFunc[*calculator](func(*calculator) error {
			order = append(order, name)
			return nil
		})
	}

	fan := Reactors[*calculator]{named("a"), named("b"), named("c")}
	require.NoError(t, fan.React(&calculator{}))
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestReactors_shortCircuit(t *testing.T) {
	// With the k-th reactor failing, reactors 1..k must be called exactly
	// once and reactors k+1..N exactly zero times.
	boom := errors.New("boom")

	for k := 0; k < 4; k++ {
		reactors := make([]*countingReactor, 4)
		fan := make(Reactors[*calculator], 4)
		for i := range reactors {
			reactors[i] = &countingReactor{}
			if i == k {
				reactors[i].err = boom
			}
			fan[i] = reactors[i]
		}

		require.ErrorIs(t, fan.React(&calculator{}), boom)

		for i, r := range reactors {
			if i <= k {
				require.Equal(t, 1, r.calls, "reactor %d before/at failure", i)
			} else {
				require.Zero(t, r.calls, "reactor %d after failure", i)
			}
		}
	}
}

func TestReactors_empty(t *testing.T) {
	require.NoError(t, Reactors[*calculator]{}.React(&calculator{}))
}

func TestReactors_inStore(t *testing.T) {
	boom := errors.New("boom")
	before := &recorder{}
	failing := &countingReactor{err: boom}
	after := &countingReactor{}

	s := New[op](&calculator{}, Reactors[*calculator]{before, failing, after})

	require.ErrorIs(t, s.Dispatch(t.Context(), add(5)), boom)
	require.Equal(t, []int{5}, before.values)
	require.Equal(t, 1, failing.calls)
	require.Zero(t, after.calls)
}
