// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidAddress is returned for a server address that is not a
	// valid URL.
	ErrInvalidAddress = errors.New("invalid server address")

	// ErrUnexpectedResponse is returned when a 2xx response is not a valid
	// envelope.
	ErrUnexpectedResponse = errors.New("unexpected server response")
)
