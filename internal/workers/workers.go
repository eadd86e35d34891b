// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// Workers runs a fixed set of background workers.
type Workers struct {
	workers []Worker
}

// NewWorkers creates the server's background workers. The database health
// worker reports to the gRPC health service when that transport is enabled.
func NewWorkers(storages *store.Storages, handlers *handler.Handlers, cfg config.Workers, logger *logger.Logger) *Workers {
	var reporter HealthReporter
	if handlers != nil && handlers.GRPC != nil {
		reporter = handlers.GRPC
	}

	return &Workers{
		workers: []Worker{
			NewDBHealthWorker(storages.DB, reporter, cfg.HealthCheckInterval, logger),
		},
	}
}

// Run starts every worker in its own goroutine and blocks until all of them
// return, which happens once ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
