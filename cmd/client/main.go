// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/client"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-notes-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// top-level flags come before the subcommand and override .env and
	// environment values
	var overrides config.ClientAdapter
	flag.StringVar(&overrides.HTTPAddress, "a", "", "server address (host:port or URL)")
	flag.StringVar(&overrides.Token, "t", "", "access token")
	flag.DurationVar(&overrides.RequestTimeout, "timeout", 0, "request timeout")
	flag.Parse()

	if err = cfg.Override(overrides); err != nil {
		log.Fatal().Err(err).Msg("invalid client configuration")
	}

	notes, err := adapter.NewHTTPNotesClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notes client")
	}

	app := client.NewApp(notes, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, log)
	if err = run(app, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(app client.Client, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	return app.Run(ctx, args)
}
