package nats

import (
	"context"
	"encoding/json"
	"fmt"

	natsgo "github.com/nats-io/nats.go"

	"github.com/brunocodutra/reducer/core/store"
)

// Dispatcher publishes actions to a NATS subject. It implements
// store.Dispatcher and may be used anywhere a local dispatcher would be.
type Dispatcher[A any] struct {
	nc      *natsgo.Conn
	subject string
}

// NewDispatcher returns a Dispatcher publishing to subject over nc.
func NewDispatcher[A any](nc *natsgo.Conn, subject string) *Dispatcher[A] {
	return &Dispatcher[A]{nc: nc, subject: subject}
}

// Dispatch encodes the action as JSON and publishes it. A nil result means
// the action was handed to the NATS client, not that any consumer applied
// it.
func (d *Dispatcher[A]) Dispatch(_ context.Context, action A) error {
	data, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("encode action: %w", err)
	}
	if err := d.nc.Publish(d.subject, data); err != nil {
		return fmt.Errorf("nats: publish: %w", err)
	}
	return nil
}

var _ store.Dispatcher[any] = (*Dispatcher[any])(nil)
