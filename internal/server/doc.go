// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the notes API transports.
//
// The HTTP transport serves the REST API. The optional gRPC transport only
// exposes the standard health service. [Server.RunServer] blocks until the
// context is cancelled or a termination signal arrives and then shuts both
// transports down within a bounded timeout.
package server
