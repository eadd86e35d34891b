// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
)

var (
	corsAllowedMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}, ", ")
	corsAllowedHeaders = strings.Join([]string{
		"Authorization", "Content-Type", "Content-Encoding", "Accept-Encoding", traceIDHeader, hashHeader,
	}, ", ")
	corsExposedHeaders = strings.Join([]string{traceIDHeader, hashHeader}, ", ")
)

// withCORS allows cross-origin calls from corsAllowedOrigin and answers
// preflight requests with 204.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.corsAllowedOrigin == "" {
			next.ServeHTTP(w, r)
			return
		}

		header := w.Header()
		header.Set("Access-Control-Allow-Origin", h.corsAllowedOrigin)
		header.Set("Access-Control-Expose-Headers", corsExposedHeaders)
		if h.corsAllowedOrigin != "*" {
			header.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			header.Set("Access-Control-Allow-Methods", corsAllowedMethods)
			header.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
