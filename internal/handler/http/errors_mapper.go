// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// errorStatusMap lists the errors whose text is shown to clients together
// with their HTTP status. The first match wins: validation details come
// before the generic errors wrapping them.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{validators.ErrEmptyFullName, http.StatusBadRequest},
	{validators.ErrEmptyEmail, http.StatusBadRequest},
	{validators.ErrEmptyPassword, http.StatusBadRequest},
	{validators.ErrEmptyTitle, http.StatusBadRequest},
	{validators.ErrEmptyContent, http.StatusBadRequest},
	{validators.ErrNoChangesProvided, http.StatusBadRequest},
	{validators.ErrEmptyPinnedFlag, http.StatusBadRequest},
	{validators.ErrEmptySearchQuery, http.StatusBadRequest},
	{validators.ErrInvalidUserID, http.StatusBadRequest},
	{utils.ErrEmptyBody, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidGzip, http.StatusBadRequest},
	{ErrIntegrityCheckFailed, http.StatusBadRequest},
	{store.ErrOwnerNotFound, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{store.ErrEmailAlreadyExists, http.StatusConflict},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrNoteNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},
	{ErrRouteNotFound, http.StatusNotFound},
}

// statusFromError returns the HTTP status of err and the message sent to the
// client. Unknown errors are internal: their text is never exposed.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status, e.err.Error()
		}
	}
	return http.StatusInternalServerError, errInternal.Error()
}
