// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a single user-owned note.
type Note struct {
	// NoteID is the unique identifier of the note (UUIDv7, time-ordered).
	NoteID string `json:"id"`

	// UserID is the identifier of the owner. Every read and write of a note
	// is scoped by it.
	UserID string `json:"userId"`

	// Title is the required note title.
	Title string `json:"title"`

	// Content is the required note body.
	Content string `json:"content"`

	// Tags is the ordered list of labels. Never nil once stored.
	Tags Tags `json:"tags"`

	// IsPinned marks the note to be listed before unpinned ones.
	IsPinned bool `json:"isPinned"`

	// CreatedAt is the creation timestamp. Together with NoteID it defines
	// the insertion order used when listing notes.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate is a partial update of a note.
// Only non-nil fields are applied.
type NoteUpdate struct {
	// NoteID identifies the note. Taken from the URL, not from the body.
	NoteID string `json:"-"`

	// UserID is the caller. Taken from the access token, not from the body.
	UserID string `json:"-"`

	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Tags     *Tags   `json:"tags,omitempty"`
	IsPinned *bool   `json:"isPinned,omitempty"`
}

// HasChanges reports whether at least one field is set.
func (u NoteUpdate) HasChanges() bool {
	return u.Title != nil || u.Content != nil || u.Tags != nil || u.IsPinned != nil
}

// PinRequest is the body of the toggle-pinned endpoint.
type PinRequest struct {
	IsPinned *bool `json:"isPinned"`
}

// NoteQuery is a search of the caller's notes.
type NoteQuery struct {
	UserID string
	Query  string
}
