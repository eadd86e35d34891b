// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// renderSuccess writes {"error":false,"data":...,"message":...} with 200.
func renderSuccess(w http.ResponseWriter, r *http.Request, data any, message string) {
	if _, err := utils.WriteJSON(w, models.Response{Data: data, Message: message}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "renderSuccess").Msg("error writing response")
	}
}

// renderError writes {"error":true,"message":...} with the status mapped
// from err.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "renderError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", "renderError").Int("status", status).Msg("request rejected")
	}

	writeError(w, status, message)
}

// writeError writes the error envelope without logging. Middleware that
// runs outside the request logger uses it directly.
func writeError(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.Response{Error: true, Message: message}, status)
}
