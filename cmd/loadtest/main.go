// Command loadtest hammers a single actor task from many producers and
// reports throughput. Prometheus metrics are served on $PROM_PORT for the
// duration of the run.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	promadapter "github.com/brunocodutra/reducer/adapters/prometheus"
	"github.com/brunocodutra/reducer/core/actor"
	"github.com/brunocodutra/reducer/core/store"
)

var (
	producers = getEnvInt("P", 8)
	actions   = getEnvInt("N", 100_000)
	capacity  = getEnvInt("CAP", 1024)
	promPort  = getEnvInt("PROM_PORT", 2121)
)

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

type tally struct {
	count int
	sum   int64
}

func (t *tally) Reduce(delta int) {
	t.count++
	t.sum += int64(delta)
}

func main() {
	log := slog.Default()

	reg := prometheus.NewRegistry()
	go func() {
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		if err := http.ListenAndServe(fmt.Sprintf(":%d", promPort), nil); err != nil {
			log.Warn("metrics server stopped", slog.Any("error", err))
		}
	}()

	st := store.New[int](&tally{}, store.ReactorFunc[*tally](func(*tally) error { return nil }))

	ctx := context.Background()
	handle, completion := actor.Spawn(ctx, st, actor.Options{
		ID:       "loadtest",
		Capacity: capacity,
		Metrics:  promadapter.NewTaskMetrics(reg),
	})

	log.Info("starting",
		slog.Int("producers", producers),
		slog.Int("actions", actions),
		slog.Int("capacity", capacity),
	)

	start := time.Now()

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		clone := handle.Clone()
		g.Go(func() error {
			defer clone.Close()
			for i := 0; i < actions; i++ {
				if err := clone.Dispatch(ctx, 1); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("producer failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := handle.Close(); err != nil {
		log.Error("close failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := completion.Wait(ctx); err != nil {
		log.Error("task failed", slog.Any("error", err))
		os.Exit(1)
	}

	elapsed := time.Since(start)
	total := producers * actions

	log.Info("done",
		slog.Int("dispatched", total),
		slog.Int("applied", st.State().count),
		slog.Duration("elapsed", elapsed),
		slog.Float64("actions_per_sec", float64(total)/elapsed.Seconds()),
	)
}
