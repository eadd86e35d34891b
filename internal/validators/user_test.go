// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func validUser() models.User {
	return models.User{
		FullName: "Ann Lee",
		Email:    "ann@example.com",
		Password: "secret",
	}
}

func TestNewUserValidator(t *testing.T) {
	require.NotNil(t, NewUserValidator())
}

func TestUserValidator_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()
	u := validUser()

	assert.NoError(t, v.Validate(ctx, u))
	assert.NoError(t, v.Validate(ctx, &u))
	assert.ErrorIs(t, v.Validate(ctx, "user"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Note{}), ErrUnsupportedType)
}

func TestUserValidator_Registration(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name    string
		mutate  func(*models.User)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.User) {}},
		{name: "empty full name", mutate: func(u *models.User) { u.FullName = "" }, wantErr: ErrEmptyFullName},
		{name: "whitespace full name", mutate: func(u *models.User) { u.FullName = "  \t" }, wantErr: ErrEmptyFullName},
		{name: "empty email", mutate: func(u *models.User) { u.Email = "" }, wantErr: ErrEmptyEmail},
		{name: "empty password", mutate: func(u *models.User) { u.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "whitespace password", mutate: func(u *models.User) { u.Password = "   " }, wantErr: ErrEmptyPassword},
		{name: "password over 72 bytes", mutate: func(u *models.User) { u.Password = strings.Repeat("p", 73) }, wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := v.Validate(context.Background(), u)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidator_LoginFieldsOnly(t *testing.T) {
	v := NewUserValidator()
	u := models.User{Email: "ann@example.com", Password: "secret"}

	assert.NoError(t, v.Validate(context.Background(), u, FieldEmail, FieldPassword))
	assert.ErrorIs(t, v.Validate(context.Background(), u), ErrEmptyFullName)
}

func TestUserValidator_UserID(t *testing.T) {
	v := NewUserValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}, FieldUserID), ErrInvalidUserID)
	assert.NoError(t, v.Validate(context.Background(), models.User{UserID: "u-1"}, FieldUserID))
}

func TestUserValidator_UnknownField(t *testing.T) {
	v := NewUserValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), validUser(), "nickname"), ErrUnknownField)
}
