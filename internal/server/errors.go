// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoTransportConfigured means neither an HTTP nor a gRPC transport
	// could be built from the given handlers and addresses.
	errNoTransportConfigured = errors.New("no HTTP or gRPC transport configured")

	errNothingToRun = errors.New("server has no transports to run")
)
