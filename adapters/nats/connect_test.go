package nats

import (
	"errors"
	"testing"

	natsgo "github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
)

func TestReuseConnection_leases(t *testing.T) {
	var dials, closes int
	conn := &natsgo.Conn{}

	connect := ReuseConnection(func() (*natsgo.Conn, closeFunc, error) {
		dials++
		return conn, func() { closes++ }, nil
	})

	nc1, close1, err := connect()
	require.NoError(t, err)
	nc2, close2, err := connect()
	require.NoError(t, err)

	require.Same(t, nc1, nc2)
	require.Equal(t, 1, dials)

	close1()
	require.Equal(t, 0, closes, "connection stays up while leased")
	close2()
	require.Equal(t, 1, closes)

	// The next lease dials anew.
	_, close3, err := connect()
	require.NoError(t, err)
	require.Equal(t, 2, dials)
	close3()
	require.Equal(t, 2, closes)
}

func TestReuseConnection_dialError(t *testing.T) {
	boom := errors.New("boom")
	connect := ReuseConnection(func() (*natsgo.Conn, closeFunc, error) {
		return nil, nil, boom
	})

	_, _, err := connect()
	require.ErrorIs(t, err, boom)
}
