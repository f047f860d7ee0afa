// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/store"
)

// StoreUpMetricName is the gauge exported by [StoreHealthWorker].
const StoreUpMetricName = "ephemeral_sessions_store_up"

// DefaultHealthCheckInterval is used when no positive interval is configured.
const DefaultHealthCheckInterval = 30 * time.Second

// StoreHealthWorker pings the session store on a fixed interval and exports
// the result as a 0/1 gauge. State changes are logged once, not on every
// tick.
type StoreHealthWorker struct {
	store    store.SessionStore
	interval time.Duration
	up       prometheus.Gauge
	logger   *logger.Logger

	lastUp *bool
}

func NewStoreHealthWorker(sessions store.SessionStore, interval time.Duration, reg prometheus.Registerer, logger *logger.Logger) (*StoreHealthWorker, error) {
	if interval <= 0 {
		interval = DefaultHealthCheckInterval
	}

	up := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: StoreUpMetricName,
		Help: "Whether the last ping of the session store succeeded (1) or not (0).",
	})
	if reg != nil {
		if err := reg.Register(up); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return nil, err
			}
			up = already.ExistingCollector.(prometheus.Gauge)
		}
	}

	return &StoreHealthWorker{
		store:    sessions,
		interval: interval,
		up:       up,
		logger:   logger,
	}, nil
}

func (w *StoreHealthWorker) Name() string {
	return "store-health"
}

// Run checks once immediately, then on every tick until ctx is cancelled.
func (w *StoreHealthWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *StoreHealthWorker) check(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	up := w.store.Ping(checkCtx)
	if up {
		w.up.Set(1)
	} else {
		w.up.Set(0)
	}

	if w.lastUp != nil && *w.lastUp == up {
		return
	}
	w.lastUp = &up

	if up {
		w.logger.Info().Msg("session store is reachable")
	} else {
		w.logger.Warn().Msg("session store is unreachable")
	}
}
