// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		renderError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		renderError(w, r, err)
		return
	}

	h.renderAuth(w, r, registeredUser, app.MsgRegistrationSuccessful)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		renderError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(r.Context(), user)
	if err != nil {
		renderError(w, r, err)
		return
	}

	h.renderAuth(w, r, foundUser, app.MsgLoginSuccessful)
}

// renderAuth issues a token for user and answers with the user and the
// token. The token is also set in the Authorization header.
func (h *Handler) renderAuth(w http.ResponseWriter, r *http.Request, user models.User, message string) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		renderError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	renderSuccess(w, r, models.AuthResponse{User: user, AccessToken: token.SignedString}, message)
}

// getUser returns the caller's current user record. A token whose user no
// longer exists is rejected like any other invalid token.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if errors.Is(err, store.ErrUserNotFound) {
		logger.FromRequest(r).Debug().Str("user_id", userID).Msg("token user no longer exists")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, user, app.MsgUserRetrieved)
}

// decodeJSON decodes the request body into v. Malformed bodies are reported
// as [ErrInvalidJSON].
func decodeJSON(r *http.Request, v any) error {
	err := utils.DecodeJSON(r, v)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
