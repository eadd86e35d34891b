// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the notes REST API.
//
// The primary abstraction is [NotesClient], which hides the HTTP routes, the
// bearer token, and the response envelope from callers. The package ships an
// HTTP/REST implementation ([NewHTTPNotesClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The
// message sent by the server is kept in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_client_mock.go -package=mock

// NotesClient defines communication with the notes server. Implementations
// are responsible for serialisation, authentication header management, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type NotesClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account from user.FullName, user.Email and
	// user.Password. On success the issued token is stored via SetToken.
	Register(ctx context.Context, user models.User) (models.AuthResponse, error)

	// Login authenticates with user.Email and user.Password. On success the
	// issued token is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.AuthResponse, error)

	// GetUser returns the account the stored token belongs to.
	GetUser(ctx context.Context) (models.User, error)

	// AddNote creates a note from note.Title, note.Content and note.Tags.
	AddNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateNote applies the non-nil fields of update to note update.NoteID.
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes the note with the given ID.
	DeleteNote(ctx context.Context, noteID string) error

	// SetPinned sets the pinned flag of the note with the given ID.
	SetPinned(ctx context.Context, noteID string, pinned bool) (models.Note, error)

	// AllNotes lists the caller's notes, pinned notes first.
	AllNotes(ctx context.Context) ([]models.Note, error)

	// SearchNotes lists the caller's notes whose title or content contains
	// query, ignoring case.
	SearchNotes(ctx context.Context, query string) ([]models.Note, error)

	// Version returns the server version.
	Version(ctx context.Context) (string, error)
}
