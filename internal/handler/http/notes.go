// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// addNoteRequest is the body of add-note. Identifiers, the pinned flag and
// the timestamp are assigned by the server.
type addNoteRequest struct {
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Tags    models.Tags `json:"tags"`
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req addNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err)
		return
	}

	note, err := h.services.NoteService.AddNote(r.Context(), models.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, note, app.MsgNoteAdded)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var update models.NoteUpdate
	if err := decodeJSON(r, &update); err != nil {
		renderError(w, r, err)
		return
	}
	update.NoteID = chi.URLParam(r, "noteId")
	update.UserID = userID

	note, err := h.services.NoteService.UpdateNote(r.Context(), update)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, note, app.MsgNoteUpdated)
}

func (h *Handler) getAllNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.GetAllNotes(r.Context(), userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, notes, app.MsgAllNotesRetrieved)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), userID, chi.URLParam(r, "noteId")); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, nil, app.MsgNoteDeleted)
}

func (h *Handler) toggleNotePinned(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req models.PinRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err)
		return
	}

	note, err := h.services.NoteService.SetPinned(r.Context(), userID, chi.URLParam(r, "noteId"), req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, note, app.MsgNotePinnedUpdated)
}

// searchNotes matches the "query" URL parameter against the titles and
// contents of the caller's notes.
func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.SearchNotes(r.Context(), userID, r.URL.Query().Get("query"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, notes, app.MsgNotesFound)
}
