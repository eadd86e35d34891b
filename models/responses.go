// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the envelope every JSON endpoint answers with.
//
// Success: {"error": false, "data": ..., "message": "..."}
// Failure: {"error": true, "message": "..."}
type Response struct {
	Error   bool   `json:"error"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is the data of a successful registration or login: the
// public user record with the issued access token next to its fields.
type AuthResponse struct {
	User
	AccessToken string `json:"accessToken"`
}
