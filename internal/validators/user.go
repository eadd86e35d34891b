// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants for user validation.
const (
	// FieldUserID targets the identifier of an existing user.
	FieldUserID = "user_id"

	// FieldFullName targets the display name given at registration.
	FieldFullName = "full_name"

	// FieldEmail targets the login email.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a register or login
	// request.
	FieldPassword = "password"
)

// maxPasswordLength is the bcrypt input limit in bytes.
const maxPasswordLength = 72

// UserValidator implements [Validator] for [models.User].
// Without explicit fields the registration rules are checked.
type UserValidator struct{}

// NewUserValidator constructs a new UserValidator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate validates a models.User or *models.User.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if isBlank(user.UserID) {
				return ErrInvalidUserID
			}
		case FieldFullName:
			if isBlank(user.FullName) {
				return ErrEmptyFullName
			}
		case FieldEmail:
			if isBlank(user.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if isBlank(user.Password) {
				return ErrEmptyPassword
			}
			if len(user.Password) > maxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
