// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

const testNoteID = "0190c6c8-7a1e-7cc4-9a43-5b1f1f0c2d3e"

func ptrString(s string) *string { return &s }
func ptrBool(b bool) *bool       { return &b }

func validNote() models.Note {
	return models.Note{
		UserID:  "u-1",
		Title:   "Groceries",
		Content: "milk",
	}
}

// ── dispatch ──────────────────────────────────────────────────────────────────

func TestNoteValidator_Dispatch(t *testing.T) {
	v := NewNoteValidator()
	require.NotNil(t, v)
	ctx := context.Background()

	n := validNote()
	u := models.NoteUpdate{NoteID: testNoteID, UserID: "u-1", Title: ptrString("x")}
	p := models.PinRequest{IsPinned: ptrBool(true)}
	q := models.NoteQuery{UserID: "u-1", Query: "milk"}

	assert.NoError(t, v.Validate(ctx, n))
	assert.NoError(t, v.Validate(ctx, &n))
	assert.NoError(t, v.Validate(ctx, u))
	assert.NoError(t, v.Validate(ctx, &u))
	assert.NoError(t, v.Validate(ctx, p))
	assert.NoError(t, v.Validate(ctx, &p))
	assert.NoError(t, v.Validate(ctx, q))
	assert.NoError(t, v.Validate(ctx, &q))
	assert.ErrorIs(t, v.Validate(ctx, models.User{}), ErrUnsupportedType)
}

// ── Note ──────────────────────────────────────────────────────────────────────

func TestNoteValidator_Note(t *testing.T) {
	v := NewNoteValidator()

	tests := []struct {
		name    string
		mutate  func(*models.Note)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Note) {}},
		{name: "missing owner", mutate: func(n *models.Note) { n.UserID = "" }, wantErr: ErrInvalidUserID},
		{name: "empty title", mutate: func(n *models.Note) { n.Title = "" }, wantErr: ErrEmptyTitle},
		{name: "whitespace title", mutate: func(n *models.Note) { n.Title = " \n" }, wantErr: ErrEmptyTitle},
		{name: "empty content", mutate: func(n *models.Note) { n.Content = "" }, wantErr: ErrEmptyContent},
		{name: "malformed note id", mutate: func(n *models.Note) { n.NoteID = "42" }, fields: []string{FieldNoteID}, wantErr: ErrInvalidNoteID},
		{name: "valid note id", mutate: func(n *models.Note) { n.NoteID = testNoteID }, fields: []string{FieldNoteID}},
		{name: "unknown field", mutate: func(*models.Note) {}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := validNote()
			tt.mutate(&n)

			err := v.Validate(context.Background(), n, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── NoteUpdate ────────────────────────────────────────────────────────────────

func TestNoteValidator_NoteUpdate(t *testing.T) {
	v := NewNoteValidator()

	tests := []struct {
		name    string
		update  models.NoteUpdate
		wantErr error
	}{
		{
			name:   "only pinned flag",
			update: models.NoteUpdate{NoteID: testNoteID, UserID: "u-1", IsPinned: ptrBool(false)},
		},
		{
			name:   "empty tags are a change",
			update: models.NoteUpdate{NoteID: testNoteID, UserID: "u-1", Tags: &models.Tags{}},
		},
		{
			name:    "no changes",
			update:  models.NoteUpdate{NoteID: testNoteID, UserID: "u-1"},
			wantErr: ErrNoChangesProvided,
		},
		{
			name:    "blank title",
			update:  models.NoteUpdate{NoteID: testNoteID, UserID: "u-1", Title: ptrString("  ")},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "blank content",
			update:  models.NoteUpdate{NoteID: testNoteID, UserID: "u-1", Title: ptrString("t"), Content: ptrString("")},
			wantErr: ErrEmptyContent,
		},
		{
			name:    "malformed note id",
			update:  models.NoteUpdate{NoteID: "not-a-uuid", UserID: "u-1", Title: ptrString("t")},
			wantErr: ErrInvalidNoteID,
		},
		{
			name:    "missing caller",
			update:  models.NoteUpdate{NoteID: testNoteID, Title: ptrString("t")},
			wantErr: ErrInvalidUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── PinRequest / NoteQuery ────────────────────────────────────────────────────

func TestNoteValidator_PinRequest(t *testing.T) {
	v := NewNoteValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.PinRequest{}), ErrEmptyPinnedFlag)
	assert.NoError(t, v.Validate(context.Background(), models.PinRequest{IsPinned: ptrBool(false)}))
}

func TestNoteValidator_NoteQuery(t *testing.T) {
	v := NewNoteValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.NoteQuery{UserID: "u-1"}), ErrEmptySearchQuery)
	assert.ErrorIs(t, v.Validate(context.Background(), models.NoteQuery{UserID: "u-1", Query: "   "}), ErrEmptySearchQuery)
	assert.ErrorIs(t, v.Validate(context.Background(), models.NoteQuery{Query: "x"}), ErrInvalidUserID)
	assert.NoError(t, v.Validate(context.Background(), models.NoteQuery{UserID: "u-1", Query: "x"}, FieldQuery))
}
