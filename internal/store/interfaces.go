// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Package store implements persistence of users and notes on top of
// database/sql. PostgreSQL (pgx) and SQLite (mattn/go-sqlite3) are supported;
// queries are built with squirrel in the placeholder format of the driver.
package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record.
	// Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrUserNotFound when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrUserNotFound when no user has the ID.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// NoteRepository persists notes. Every method except CreateNote is scoped
// by the owner: a note of another user behaves exactly like a missing one.
type NoteRepository interface {
	// CreateNote returns ErrOwnerNotFound if note.UserID does not exist.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	// UpdateNote applies the non-nil fields and returns the updated note,
	// or ErrNoteNotFound.
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	// DeleteNote returns ErrNoteNotFound when nothing was deleted.
	DeleteNote(ctx context.Context, userID, noteID string) error
	// ListNotes returns all notes of the user, pinned first, then in
	// insertion order.
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	// SearchNotes returns the notes of the user whose title or content
	// contains query, ignoring case, in the same order as ListNotes.
	SearchNotes(ctx context.Context, userID, query string) ([]models.Note, error)
}

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}
