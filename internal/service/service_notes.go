// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService is the plain NoteService. It expects validated input; see
// NoteValidationService.
type noteService struct {
	noteRepository store.NoteRepository
	idGenerator    *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService over the given repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// AddNote stores a new, unpinned note. Missing tags become an empty list.
func (s *noteService) AddNote(ctx context.Context, note models.Note) (models.Note, error) {
	note.NoteID = s.idGenerator.Generate()
	note.IsPinned = false
	note.CreatedAt = time.Now().UTC()
	if note.Tags == nil {
		note.Tags = models.Tags{}
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.AddNote").Str("user_id", note.UserID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return created, nil
}

func (s *noteService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	updated, err := s.noteRepository.UpdateNote(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.UpdateNote").Str("note_id", update.NoteID).Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := s.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.DeleteNote").Str("note_id", noteID).Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}

// SetPinned is an update of the pinned flag only.
func (s *noteService) SetPinned(ctx context.Context, userID, noteID string, request models.PinRequest) (models.Note, error) {
	return s.UpdateNote(ctx, models.NoteUpdate{
		NoteID:   noteID,
		UserID:   userID,
		IsPinned: request.IsPinned,
	})
}

func (s *noteService) GetAllNotes(ctx context.Context, userID string) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.GetAllNotes").Str("user_id", userID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

// SearchNotes matches the trimmed query against title and content.
func (s *noteService) SearchNotes(ctx context.Context, userID, query string) ([]models.Note, error) {
	notes, err := s.noteRepository.SearchNotes(ctx, userID, strings.TrimSpace(query))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.SearchNotes").Str("user_id", userID).Msg("searching notes failed")
		return nil, fmt.Errorf("searching notes failed: %w", err)
	}

	return notes, nil
}
