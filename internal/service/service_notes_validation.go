// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NoteValidationService validates input before delegating to the wrapped
// NoteService.
//
// Invalid input is reported as ErrInvalidDataProvided wrapping the
// validator error. A malformed note ID is reported as store.ErrNoteNotFound:
// such a note cannot exist.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) AddNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note, validators.FieldUserID, validators.FieldTitle, validators.FieldContent); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AddNote(ctx, note)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	if err := v.checkNoteID(ctx, update.NoteID); err != nil {
		return models.Note{}, err
	}
	if err := v.validator.Validate(ctx, update, validators.FieldUserID, validators.FieldChanges, validators.FieldTitle, validators.FieldContent); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateNote(ctx, update)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := v.checkNoteID(ctx, noteID); err != nil {
		return err
	}
	if err := v.checkUserID(ctx, userID); err != nil {
		return err
	}

	return v.inner.DeleteNote(ctx, userID, noteID)
}

func (v *NoteValidationService) SetPinned(ctx context.Context, userID, noteID string, request models.PinRequest) (models.Note, error) {
	if err := v.checkNoteID(ctx, noteID); err != nil {
		return models.Note{}, err
	}
	if err := v.checkUserID(ctx, userID); err != nil {
		return models.Note{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SetPinned(ctx, userID, noteID, request)
}

func (v *NoteValidationService) GetAllNotes(ctx context.Context, userID string) ([]models.Note, error) {
	if err := v.checkUserID(ctx, userID); err != nil {
		return nil, err
	}

	return v.inner.GetAllNotes(ctx, userID)
}

func (v *NoteValidationService) SearchNotes(ctx context.Context, userID, query string) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, models.NoteQuery{UserID: userID, Query: query}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SearchNotes(ctx, userID, query)
}

func (v *NoteValidationService) Wrap(wrapper NoteService) NoteService {
	v.inner = wrapper
	return v
}

func (v *NoteValidationService) checkNoteID(ctx context.Context, noteID string) error {
	if err := v.validator.Validate(ctx, models.Note{NoteID: noteID}, validators.FieldNoteID); err != nil {
		return fmt.Errorf("%w: %w", store.ErrNoteNotFound, err)
	}
	return nil
}

func (v *NoteValidationService) checkUserID(ctx context.Context, userID string) error {
	if err := v.validator.Validate(ctx, models.Note{UserID: userID}, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
