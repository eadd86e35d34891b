// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// Handler holds the dependencies of the HTTP routes.
type Handler struct {
	services *service.Services

	// hasher signs response bodies and verifies signed requests.
	// Nil when no hash key is configured.
	hasher *utils.Hasher

	requestTimeout    time.Duration
	corsAllowedOrigin string

	logger *logger.Logger
}

// NewHandler creates a Handler. hashKey enables the HashSHA256 header when
// non-empty.
func NewHandler(services *service.Services, cfg config.Server, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:          services,
		requestTimeout:    cfg.RequestTimeout,
		corsAllowedOrigin: cfg.CORSAllowedOrigin,
		logger:            logger,
	}
	if hashKey != "" {
		h.hasher = utils.NewHasher(hashKey)
	}

	return h
}

// userID returns the caller's ID attached by the auth middleware.
func userID(r *http.Request) (string, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
