// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const validNoteID = "0190c6c8-7a1e-7cc4-9a43-5b1f1f0c2d3e"

func newValidatedNoteService(t *testing.T) (NoteService, *mock.MockNoteService) {
	t.Helper()
	inner := mock.NewMockNoteService(gomock.NewController(t))
	return NewNoteValidationService().Wrap(inner), inner
}

func TestNoteValidationService_AddNote(t *testing.T) {
	svc, inner := newValidatedNoteService(t)
	ctx := context.Background()

	_, err := svc.AddNote(ctx, models.Note{UserID: "u-1", Content: "c"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)

	_, err = svc.AddNote(ctx, models.Note{UserID: "u-1", Title: "t", Content: "   "})
	assert.ErrorIs(t, err, validators.ErrEmptyContent)

	note := models.Note{UserID: "u-1", Title: "t", Content: "c"}
	inner.EXPECT().AddNote(ctx, note).Return(note, nil)

	_, err = svc.AddNote(ctx, note)
	require.NoError(t, err)
}

func TestNoteValidationService_UpdateNote(t *testing.T) {
	svc, inner := newValidatedNoteService(t)
	ctx := context.Background()

	// malformed IDs cannot exist
	_, err := svc.UpdateNote(ctx, models.NoteUpdate{NoteID: "42", UserID: "u-1", Title: ptrString("t")})
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.UpdateNote(ctx, models.NoteUpdate{NoteID: validNoteID, UserID: "u-1"})
	assert.ErrorIs(t, err, validators.ErrNoChangesProvided)

	_, err = svc.UpdateNote(ctx, models.NoteUpdate{NoteID: validNoteID, UserID: "u-1", Title: ptrString("")})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)

	update := models.NoteUpdate{NoteID: validNoteID, UserID: "u-1", Content: ptrString("c")}
	inner.EXPECT().UpdateNote(ctx, update).Return(models.Note{NoteID: validNoteID}, nil)

	_, err = svc.UpdateNote(ctx, update)
	require.NoError(t, err)
}

func TestNoteValidationService_DeleteNote(t *testing.T) {
	svc, inner := newValidatedNoteService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteNote(ctx, "u-1", "not-a-uuid"), store.ErrNoteNotFound)
	assert.ErrorIs(t, svc.DeleteNote(ctx, "", validNoteID), ErrInvalidDataProvided)

	inner.EXPECT().DeleteNote(ctx, "u-1", validNoteID).Return(nil)
	require.NoError(t, svc.DeleteNote(ctx, "u-1", validNoteID))
}

func TestNoteValidationService_SetPinned(t *testing.T) {
	svc, inner := newValidatedNoteService(t)
	ctx := context.Background()

	_, err := svc.SetPinned(ctx, "u-1", validNoteID, models.PinRequest{})
	assert.ErrorIs(t, err, validators.ErrEmptyPinnedFlag)

	_, err = svc.SetPinned(ctx, "u-1", "x", models.PinRequest{IsPinned: ptrBool(true)})
	assert.ErrorIs(t, err, store.ErrNoteNotFound)

	request := models.PinRequest{IsPinned: ptrBool(false)}
	inner.EXPECT().SetPinned(ctx, "u-1", validNoteID, request).Return(models.Note{}, nil)

	_, err = svc.SetPinned(ctx, "u-1", validNoteID, request)
	require.NoError(t, err)
}

func TestNoteValidationService_SearchNotes(t *testing.T) {
	svc, inner := newValidatedNoteService(t)
	ctx := context.Background()

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := svc.SearchNotes(ctx, "u-1", query)
		assert.ErrorIs(t, err, validators.ErrEmptySearchQuery, "query %q", query)
	}

	inner.EXPECT().SearchNotes(ctx, "u-1", " milk ").Return([]models.Note{}, nil)
	_, err := svc.SearchNotes(ctx, "u-1", " milk ")
	require.NoError(t, err)
}

func TestNoteValidationService_GetAllNotes(t *testing.T) {
	svc, inner := newValidatedNoteService(t)
	ctx := context.Background()

	_, err := svc.GetAllNotes(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	inner.EXPECT().GetAllNotes(ctx, "u-1").Return([]models.Note{}, nil)
	_, err = svc.GetAllNotes(ctx, "u-1")
	require.NoError(t, err)
}
