// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const testNoteID = "0190c6c8-7a1e-7cc4-9a43-5b1f1f0c2d3e"

func storedNote() models.Note {
	return models.Note{
		NoteID:    testNoteID,
		UserID:    "u-1",
		Title:     "groceries",
		Content:   "milk",
		Tags:      models.Tags{"home"},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// withNoteID sets the {noteId} URL parameter as the router would.
func withNoteID(r *http.Request, noteID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("noteId", noteID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func ptr[T any](v T) *T { return &v }

// ── addNote ──

func TestAddNote_Success(t *testing.T) {
	h, m := newMockedHandler(t)

	m.notes.EXPECT().
		AddNote(gomock.Any(), models.Note{UserID: "u-1", Title: "groceries", Content: "milk", Tags: models.Tags{"home"}}).
		Return(storedNote(), nil)

	// client-supplied identifiers and pinned flag are ignored
	body := `{"id":"x","userId":"someone-else","title":"groceries","content":"milk","tags":["home"],"isPinned":true}`
	rec := httptest.NewRecorder()
	h.addNote(rec, withUser(jsonRequest(http.MethodPost, "/add-note", body), "u-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec.Body)
	assert.False(t, resp.Error)
	assert.Equal(t, "note added successfully", resp.Message)

	var note models.Note
	require.NoError(t, json.Unmarshal(resp.Data, &note))
	assert.Equal(t, storedNote(), note)
}

func TestAddNote_ValidationError(t *testing.T) {
	h, m := newMockedHandler(t)

	m.notes.EXPECT().AddNote(gomock.Any(), gomock.Any()).
		Return(models.Note{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyTitle))

	rec := httptest.NewRecorder()
	h.addNote(rec, withUser(jsonRequest(http.MethodPost, "/add-note", `{"content":"milk"}`), "u-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title is required", decodeResponse(t, rec.Body).Message)
}

func TestAddNote_OwnerMissing(t *testing.T) {
	h, m := newMockedHandler(t)

	m.notes.EXPECT().AddNote(gomock.Any(), gomock.Any()).
		Return(models.Note{}, fmt.Errorf("%w: user with ID u-1 does not exist", store.ErrOwnerNotFound))

	rec := httptest.NewRecorder()
	h.addNote(rec, withUser(jsonRequest(http.MethodPost, "/add-note", `{"title":"t","content":"c"}`), "u-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, store.ErrOwnerNotFound.Error(), decodeResponse(t, rec.Body).Message)
}

func TestAddNote_InvalidJSON(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := httptest.NewRecorder()
	h.addNote(rec, withUser(jsonRequest(http.MethodPost, "/add-note", `{"title":`), "u-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrInvalidJSON.Error(), decodeResponse(t, rec.Body).Message)
}

// ── updateNote ──

func TestUpdateNote_PassesOnlyProvidedFields(t *testing.T) {
	h, m := newMockedHandler(t)

	updated := storedNote()
	updated.Title = "new title"
	m.notes.EXPECT().
		UpdateNote(gomock.Any(), models.NoteUpdate{NoteID: testNoteID, UserID: "u-1", Title: ptr("new title")}).
		Return(updated, nil)

	req := withNoteID(withUser(jsonRequest(http.MethodPut, "/update-note/"+testNoteID, `{"title":"new title"}`), "u-1"), testNoteID)
	rec := httptest.NewRecorder()
	h.updateNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec.Body)
	assert.Equal(t, "note updated successfully", resp.Message)
	assert.Contains(t, string(resp.Data), `"title":"new title"`)
}

func TestUpdateNote_Errors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{"not found", store.ErrNoteNotFound, http.StatusNotFound, "note not found"},
		{
			"malformed note id",
			fmt.Errorf("%w: %w", store.ErrNoteNotFound, validators.ErrInvalidNoteID),
			http.StatusNotFound,
			"note not found",
		},
		{
			"no changes",
			fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoChangesProvided),
			http.StatusBadRequest,
			"no changes provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.notes.EXPECT().UpdateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, tt.serviceErr)

			req := withNoteID(withUser(jsonRequest(http.MethodPut, "/update-note/x", `{}`), "u-1"), "x")
			rec := httptest.NewRecorder()
			h.updateNote(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec.Body)
			assert.True(t, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

// ── getAllNotes ──

func TestGetAllNotes(t *testing.T) {
	h, m := newMockedHandler(t)

	m.notes.EXPECT().GetAllNotes(gomock.Any(), "u-1").Return([]models.Note{storedNote()}, nil)

	rec := httptest.NewRecorder()
	h.getAllNotes(rec, withUser(httptest.NewRequest(http.MethodGet, "/all-notes", nil), "u-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec.Body)
	assert.Equal(t, "all notes retrieved successfully", resp.Message)

	var notes []models.Note
	require.NoError(t, json.Unmarshal(resp.Data, &notes))
	assert.Len(t, notes, 1)
}

func TestGetAllNotes_EmptyIsArray(t *testing.T) {
	h, m := newMockedHandler(t)

	m.notes.EXPECT().GetAllNotes(gomock.Any(), "u-1").Return([]models.Note{}, nil)

	rec := httptest.NewRecorder()
	h.getAllNotes(rec, withUser(httptest.NewRequest(http.MethodGet, "/all-notes", nil), "u-1"))

	assert.Equal(t, "[]", string(decodeResponse(t, rec.Body).Data))
}

// ── deleteNote ──

func TestDeleteNote(t *testing.T) {
	h, m := newMockedHandler(t)

	m.notes.EXPECT().DeleteNote(gomock.Any(), "u-1", testNoteID).Return(nil)

	req := withNoteID(withUser(httptest.NewRequest(http.MethodDelete, "/delete-note/"+testNoteID, nil), "u-1"), testNoteID)
	rec := httptest.NewRecorder()
	h.deleteNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":false,"message":"note deleted successfully"}`, rec.Body.String())
}

func TestDeleteNote_NotFound(t *testing.T) {
	h, m := newMockedHandler(t)

	m.notes.EXPECT().DeleteNote(gomock.Any(), "u-1", testNoteID).Return(store.ErrNoteNotFound)

	req := withNoteID(withUser(httptest.NewRequest(http.MethodDelete, "/delete-note/"+testNoteID, nil), "u-1"), testNoteID)
	rec := httptest.NewRecorder()
	h.deleteNote(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"note not found"}`, rec.Body.String())
}

// ── toggleNotePinned ──

func TestToggleNotePinned(t *testing.T) {
	h, m := newMockedHandler(t)

	pinned := storedNote()
	pinned.IsPinned = true
	m.notes.EXPECT().
		SetPinned(gomock.Any(), "u-1", testNoteID, models.PinRequest{IsPinned: ptr(true)}).
		Return(pinned, nil)

	req := withNoteID(withUser(jsonRequest(http.MethodPut, "/toggle-note-pinned/"+testNoteID, `{"isPinned":true}`), "u-1"), testNoteID)
	rec := httptest.NewRecorder()
	h.toggleNotePinned(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeResponse(t, rec.Body).Data), `"isPinned":true`)
}

func TestToggleNotePinned_MissingFlag(t *testing.T) {
	h, m := newMockedHandler(t)

	m.notes.EXPECT().SetPinned(gomock.Any(), "u-1", testNoteID, models.PinRequest{}).
		Return(models.Note{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyPinnedFlag))

	req := withNoteID(withUser(jsonRequest(http.MethodPut, "/toggle-note-pinned/"+testNoteID, `{}`), "u-1"), testNoteID)
	rec := httptest.NewRecorder()
	h.toggleNotePinned(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "isPinned is required", decodeResponse(t, rec.Body).Message)
}

// ── searchNotes ──

func TestSearchNotes(t *testing.T) {
	h, m := newMockedHandler(t)

	m.notes.EXPECT().SearchNotes(gomock.Any(), "u-1", "milk & honey").Return([]models.Note{storedNote()}, nil)

	rec := httptest.NewRecorder()
	h.searchNotes(rec, withUser(httptest.NewRequest(http.MethodGet, "/search-notes?query=milk+%26+honey", nil), "u-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec.Body)
	assert.Equal(t, "notes matching the search query retrieved successfully", resp.Message)
}

func TestSearchNotes_EmptyQuery(t *testing.T) {
	h, m := newMockedHandler(t)

	m.notes.EXPECT().SearchNotes(gomock.Any(), "u-1", "").
		Return(nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptySearchQuery))

	rec := httptest.NewRecorder()
	h.searchNotes(rec, withUser(httptest.NewRequest(http.MethodGet, "/search-notes", nil), "u-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"search query is required"}`, rec.Body.String())
}

func TestNoteHandlers_NoCaller(t *testing.T) {
	h, _ := newMockedHandler(t)

	handlers := map[string]http.HandlerFunc{
		"addNote":          h.addNote,
		"updateNote":       h.updateNote,
		"getAllNotes":      h.getAllNotes,
		"deleteNote":       h.deleteNote,
		"toggleNotePinned": h.toggleNotePinned,
		"searchNotes":      h.searchNotes,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}
