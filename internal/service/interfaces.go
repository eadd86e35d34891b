// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=NoteServiceWrapper

// Package service contains the business logic of the notes server: account
// registration and login, access token handling and ownership-scoped note
// operations. Services sit between the HTTP handlers and the store
// repositories.
package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// AuthService manages user accounts and access tokens.
type AuthService interface {
	// RegisterUser validates and persists a new user. The password is
	// stored as a bcrypt hash.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	// Login returns the user matching the email and password, or
	// ErrInvalidCredentials.
	Login(ctx context.Context, user models.User) (models.User, error)
	// GetUser returns the current state of the user with the given ID.
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages the notes of a single caller. Every method is scoped
// by the caller's user ID; notes of other users behave as if they did not
// exist.
type NoteService interface {
	AddNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
	SetPinned(ctx context.Context, userID, noteID string, request models.PinRequest) (models.Note, error)
	GetAllNotes(ctx context.Context, userID string) ([]models.Note, error)
	SearchNotes(ctx context.Context, userID, query string) ([]models.Note, error)
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
