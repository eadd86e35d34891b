// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/hmac"
	"io"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

const hashHeader = "HashSHA256"

// withHashing checks the HashSHA256 header of signed requests and signs
// every response body with the configured key.
//
// Requests without the header are accepted unchanged.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if requestHash := r.Header.Get(hashHeader); requestHash != "" && r.Body != nil {
			// read bytes from body
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				renderError(w, r, err)
				return
			}
			// restore request body
			r.Body = io.NopCloser(bytes.NewReader(body))

			hashedBody := h.hasher.SumHex(body)
			if !hmac.Equal([]byte(hashedBody), []byte(requestHash)) {
				log.Warn().Str("func", "*Handler.withHashing").
					Str("hash from request", requestHash).
					Str("hashed body", hashedBody).
					Msg("hashes are not equal")
				renderError(w, r, ErrIntegrityCheckFailed)
				return
			}
		}

		hw := &hashingResponseWriter{ResponseWriter: w}
		next.ServeHTTP(hw, r)

		if hw.body.Len() > 0 {
			w.Header().Set(hashHeader, h.hasher.SumHex(hw.body.Bytes()))
		}
		if hw.status != 0 {
			w.WriteHeader(hw.status)
		}
		if hw.body.Len() > 0 {
			w.Write(hw.body.Bytes())
		}
	})
}

// hashingResponseWriter buffers the response so that its signature can be
// sent as a header.
type hashingResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *hashingResponseWriter) Write(data []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(data)
}
