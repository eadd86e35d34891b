// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned for request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidGzip is returned for gzip-encoded bodies that cannot be
	// decompressed.
	ErrInvalidGzip = errors.New("invalid gzip data")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header of a
	// request does not match its body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrRouteNotFound is returned for unknown routes and for known routes
	// requested with an unsupported method.
	ErrRouteNotFound = errors.New("route not found")

	errInternal = errors.New("internal server error")
)
