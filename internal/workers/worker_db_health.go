// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

const defaultHealthCheckInterval = 15 * time.Second

// dbHealthWorker periodically pings the database and reports whether it is
// reachable.
type dbHealthWorker struct {
	pinger   store.Pinger
	reporter HealthReporter
	interval time.Duration
	logger   *logger.Logger

	// healthy is the last reported state, nil before the first check.
	healthy *bool
}

// NewDBHealthWorker creates a worker pinging the database every interval.
// reporter may be nil, in which case state changes are only logged.
func NewDBHealthWorker(pinger store.Pinger, reporter HealthReporter, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultHealthCheckInterval
	}

	return &dbHealthWorker{
		pinger:   pinger,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run checks the database immediately and then on every tick until ctx is
// cancelled.
func (w *dbHealthWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("database health worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.check(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("database health worker stopped")
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *dbHealthWorker) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.pinger.PingContext(pingCtx)
	if ctx.Err() != nil {
		// shutting down, the result says nothing about the database
		return
	}
	healthy := err == nil

	if w.healthy == nil || *w.healthy != healthy {
		if healthy {
			w.logger.Info().Str("func", "*dbHealthWorker.check").Msg("database is reachable")
		} else {
			w.logger.Err(err).Str("func", "*dbHealthWorker.check").Msg("database is unreachable")
		}
	}
	w.healthy = &healthy

	if w.reporter != nil {
		w.reporter.SetServing(healthy)
	}
}
