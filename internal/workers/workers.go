package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/store"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the server's background workers.
func NewWorkers(storages *store.Storages, cfg config.Workers, reg prometheus.Registerer, logger *logger.Logger) (*Workers, error) {
	health, err := NewStoreHealthWorker(storages.Sessions, cfg.HealthCheckInterval, reg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating store health worker: %w", err)
	}

	return &Workers{
		workers: []Worker{health},
		logger:  logger,
	}, nil
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
			worker.Run(ctx)
			w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
		}()
	}
	wg.Wait()
}
