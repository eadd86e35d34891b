// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

// newRawNoteService bypasses the validation wrapper.
func newRawNoteService(t *testing.T) (NoteService, *mock.MockNoteRepository) {
	t.Helper()
	repo := mock.NewMockNoteRepository(gomock.NewController(t))
	return NewNoteService(repo, logger.Nop()), repo
}

var errStorage = errors.New("storage error")

func ptrString(s string) *string { return &s }
func ptrBool(b bool) *bool       { return &b }

// ─────────────────────────────────────────────
// AddNote
// ─────────────────────────────────────────────

func TestNoteService_AddNote_Defaults(t *testing.T) {
	svc, repo := newRawNoteService(t)

	repo.EXPECT().CreateNote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (models.Note, error) {
			assert.True(t, utils.IsValidUUID(n.NoteID))
			assert.Equal(t, "u-1", n.UserID)
			assert.False(t, n.IsPinned, "new notes are never pinned")
			assert.NotNil(t, n.Tags)
			assert.Empty(t, n.Tags)
			assert.False(t, n.CreatedAt.IsZero())
			return n, nil
		})

	note, err := svc.AddNote(context.Background(), models.Note{
		UserID:   "u-1",
		Title:    "t",
		Content:  "c",
		IsPinned: true,
	})

	require.NoError(t, err)
	assert.False(t, note.IsPinned)
}

func TestNoteService_AddNote_KeepsTags(t *testing.T) {
	svc, repo := newRawNoteService(t)
	tags := models.Tags{"b", "a"}

	repo.EXPECT().CreateNote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (models.Note, error) {
			assert.Equal(t, tags, n.Tags)
			return n, nil
		})

	_, err := svc.AddNote(context.Background(), models.Note{UserID: "u-1", Title: "t", Content: "c", Tags: tags})
	require.NoError(t, err)
}

func TestNoteService_AddNote_OwnerMissing(t *testing.T) {
	svc, repo := newRawNoteService(t)

	repo.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, store.ErrOwnerNotFound)

	_, err := svc.AddNote(context.Background(), models.Note{UserID: "u-1", Title: "t", Content: "c"})
	assert.ErrorIs(t, err, store.ErrOwnerNotFound)
}

// ─────────────────────────────────────────────
// UpdateNote / SetPinned / DeleteNote
// ─────────────────────────────────────────────

func TestNoteService_UpdateNote_Delegates(t *testing.T) {
	svc, repo := newRawNoteService(t)
	update := models.NoteUpdate{NoteID: "n-1", UserID: "u-1", Title: ptrString("new")}
	want := models.Note{NoteID: "n-1", UserID: "u-1", Title: "new"}

	repo.EXPECT().UpdateNote(gomock.Any(), update).Return(want, nil)

	got, err := svc.UpdateNote(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_UpdateNote_NotFound(t *testing.T) {
	svc, repo := newRawNoteService(t)

	repo.EXPECT().UpdateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.UpdateNote(context.Background(), models.NoteUpdate{NoteID: "n-1", UserID: "u-2", Title: ptrString("x")})
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_SetPinned_UpdatesOnlyFlag(t *testing.T) {
	svc, repo := newRawNoteService(t)

	repo.EXPECT().UpdateNote(gomock.Any(), models.NoteUpdate{NoteID: "n-1", UserID: "u-1", IsPinned: ptrBool(true)}).
		Return(models.Note{NoteID: "n-1", IsPinned: true}, nil)

	note, err := svc.SetPinned(context.Background(), "u-1", "n-1", models.PinRequest{IsPinned: ptrBool(true)})
	require.NoError(t, err)
	assert.True(t, note.IsPinned)
}

func TestNoteService_DeleteNote(t *testing.T) {
	svc, repo := newRawNoteService(t)

	gomock.InOrder(
		repo.EXPECT().DeleteNote(gomock.Any(), "u-1", "n-1").Return(nil),
		repo.EXPECT().DeleteNote(gomock.Any(), "u-1", "n-1").Return(store.ErrNoteNotFound),
	)

	require.NoError(t, svc.DeleteNote(context.Background(), "u-1", "n-1"))
	assert.ErrorIs(t, svc.DeleteNote(context.Background(), "u-1", "n-1"), store.ErrNoteNotFound)
}

// ─────────────────────────────────────────────
// GetAllNotes / SearchNotes
// ─────────────────────────────────────────────

func TestNoteService_GetAllNotes(t *testing.T) {
	svc, repo := newRawNoteService(t)
	notes := []models.Note{{NoteID: "n-2", IsPinned: true}, {NoteID: "n-1"}}

	repo.EXPECT().ListNotes(gomock.Any(), "u-1").Return(notes, nil)

	got, err := svc.GetAllNotes(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestNoteService_GetAllNotes_StorageError(t *testing.T) {
	svc, repo := newRawNoteService(t)

	repo.EXPECT().ListNotes(gomock.Any(), "u-1").Return(nil, errStorage)

	_, err := svc.GetAllNotes(context.Background(), "u-1")
	assert.ErrorIs(t, err, errStorage)
}

func TestNoteService_SearchNotes_TrimsQuery(t *testing.T) {
	svc, repo := newRawNoteService(t)

	repo.EXPECT().SearchNotes(gomock.Any(), "u-1", "milk").Return([]models.Note{}, nil)

	got, err := svc.SearchNotes(context.Background(), "u-1", "  milk \t")
	require.NoError(t, err)
	assert.Empty(t, got)
}
