// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants for note validation.
const (
	// FieldNoteID targets the note identifier taken from the URL. It must be
	// a UUID.
	FieldNoteID = "note_id"

	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldContent targets the note body.
	FieldContent = "content"

	// FieldChanges requires a NoteUpdate to set at least one field.
	FieldChanges = "changes"

	// FieldIsPinned requires the pinned flag of a PinRequest.
	FieldIsPinned = "is_pinned"

	// FieldQuery targets the search text of a NoteQuery.
	FieldQuery = "query"
)

// NoteValidator implements [Validator] for note models: Note, NoteUpdate,
// PinRequest and NoteQuery. Values and pointers are both accepted.
//
// Title and content are required whenever they are present; whitespace-only
// text counts as absent.
type NoteValidator struct{}

// NewNoteValidator constructs a new NoteValidator.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches to the type-specific validation.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(ctx, *value, fields...)

	case models.PinRequest:
		return v.validatePinRequest(ctx, value, fields...)
	case *models.PinRequest:
		return v.validatePinRequest(ctx, *value, fields...)

	case models.NoteQuery:
		return v.validateNoteQuery(ctx, value, fields...)
	case *models.NoteQuery:
		return v.validateNoteQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(ctx context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if isBlank(note.UserID) {
				return ErrInvalidUserID
			}
		case FieldNoteID:
			if !utils.IsValidUUID(note.NoteID) {
				return ErrInvalidNoteID
			}
		case FieldTitle:
			if isBlank(note.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if isBlank(note.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteUpdate(ctx context.Context, update models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldNoteID, FieldChanges, FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if isBlank(update.UserID) {
				return ErrInvalidUserID
			}
		case FieldNoteID:
			if !utils.IsValidUUID(update.NoteID) {
				return ErrInvalidNoteID
			}
		case FieldChanges:
			if !update.HasChanges() {
				return ErrNoChangesProvided
			}
		case FieldTitle:
			if update.Title != nil && isBlank(*update.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if update.Content != nil && isBlank(*update.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validatePinRequest(ctx context.Context, request models.PinRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIsPinned}
	}

	for _, f := range fields {
		switch f {
		case FieldIsPinned:
			if request.IsPinned == nil {
				return ErrEmptyPinnedFlag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteQuery(ctx context.Context, query models.NoteQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldQuery}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if isBlank(query.UserID) {
				return ErrInvalidUserID
			}
		case FieldQuery:
			if isBlank(query.Query) {
				return ErrEmptySearchQuery
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
