package nats

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	natsgo "github.com/nats-io/nats.go"

	"github.com/brunocodutra/reducer/core/actor"
	"github.com/brunocodutra/reducer/core/store"
)

// ListenerConfig configures Listen. The zero value is valid.
type ListenerConfig struct {
	// Log for diagnostics. Defaults to slog.Default().
	Log *slog.Logger
	// Context bounds the forwarding dispatch of each delivered action.
	// Defaults to context.Background().
	Context context.Context
}

// Listen subscribes to subject and forwards every decoded action into dst.
//
// Malformed payloads are logged and skipped. Dispatch failures are logged;
// once dst reports actor.ErrTerminated the subscription unsubscribes
// itself, since no further action can ever be delivered.
func Listen[A any](nc *natsgo.Conn, subject string, dst store.Dispatcher[A], cfg ListenerConfig) (*natsgo.Subscription, error) {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("subject", subject))

	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	return nc.Subscribe(subject, func(msg *natsgo.Msg) {
		var action A
		if err := json.Unmarshal(msg.Data, &action); err != nil {
			log.Warn("dropping malformed action", slog.Any("error", err))
			return
		}

		if err := dst.Dispatch(ctx, action); err != nil {
			if errors.Is(err, actor.ErrTerminated) {
				log.Info("task terminated, unsubscribing")
				_ = msg.Sub.Unsubscribe()
				return
			}
			log.Error("dispatch failed", slog.Any("error", err))
		}
	})
}
