// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns notes.
// The same struct is used for the registration and login request bodies,
// so Password carries the plaintext input and is cleared before the user
// leaves the service layer.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7).
	UserID string `json:"id,omitempty"`

	// FullName is the display name of the user.
	FullName string `json:"fullName,omitempty"`

	// Email is the unique login of the user. Stored trimmed and lower-cased.
	Email string `json:"email,omitempty"`

	// Password is the plaintext password from a request body.
	// It is never persisted and never returned to the caller.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// CreatedOn is the registration timestamp.
	CreatedOn time.Time `json:"createdOn"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user without any credential material.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
