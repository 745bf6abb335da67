package nats

import (
	"os"
	"sync"

	natsgo "github.com/nats-io/nats.go"
)

type closeFunc = func()

// Connector creates a NATS connection along with the function releasing it.
type Connector func() (nc *natsgo.Conn, close closeFunc, err error)

// ReuseConnection shares one underlying connection across leases: the first
// lease dials, later leases get the same connection, and the connection is
// released once every lease returned its close function.
func ReuseConnection(connect Connector) Connector {
	var mu sync.Mutex
	var nc *natsgo.Conn
	var disconnect closeFunc
	var leases int

	release := func() {
		mu.Lock()
		defer mu.Unlock()
		leases--
		if leases == 0 {
			disconnect()
			nc = nil
		}
	}

	return func() (*natsgo.Conn, closeFunc, error) {
		mu.Lock()
		defer mu.Unlock()
		if nc == nil {
			conn, dc, err := connect()
			if err != nil {
				return nil, nil, err
			}
			nc, disconnect = conn, dc
		}
		leases++
		return nc, release, nil
	}
}

// ConnectURL returns a Connector for the given URL.
func ConnectURL(natsURL string) Connector {
	return func() (*natsgo.Conn, closeFunc, error) {
		nc, err := natsgo.Connect(natsURL, natsgo.MaxReconnects(3))
		if err != nil {
			return nil, nil, err
		}
		return nc, func() { nc.Close() }, nil
	}
}

// ConnectDefault connects to $NATS_URL, falling back to the default URL.
func ConnectDefault() Connector {
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		return ConnectURL(natsURL)
	}
	return ConnectURL(natsgo.DefaultURL)
}
