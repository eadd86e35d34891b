// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoAddressConfigured is returned by NewHandlers when the server
// configuration has neither SERVER_ADDRESS nor SERVER_GRPC_ADDRESS set.
var errNoAddressConfigured = errors.New("neither HTTP nor gRPC address is configured")
