// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the notes server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Every handler answers with the JSON envelope of [models.Response];
// the only exception is the authentication gate, which rejects requests
// with a bare 401 status. Cross-cutting concerns such as request tracing,
// access logging, CORS, response compression, and response signing are
// handled in this package before requests are delegated to the service
// layer.
package http
