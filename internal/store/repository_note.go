// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository] over the
// "notes" table.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository].
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote checks that the owner exists and inserts the note in one
// transaction. The foreign key on notes.user_id guards the same invariant
// against concurrent deletes.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	existsQuery, existsArgs, err := r.db.userExistsQuery(note.UserID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building owner check query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := r.db.insertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building insert query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error beginning transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var ownerExists bool
	if err = tx.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&ownerExists); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error checking note owner")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !ownerExists {
		return models.Note{}, fmt.Errorf("%w: user with ID %s does not exist", ErrOwnerNotFound, note.UserID)
	}

	created, err := scanNote(tx.QueryRowContext(ctx, insertQuery, insertArgs...))
	if err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Note{}, fmt.Errorf("%w: user with ID %s does not exist", ErrOwnerNotFound, note.UserID)
		}

		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error committing transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return created, nil
}

// UpdateNote applies the non-nil fields of update to the note identified by
// update.NoteID and owned by update.UserID.
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.updateNoteQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error updating note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteNote removes the note identified by noteID and owned by userID.
func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// ListNotes returns all notes of userID, pinned first.
func (r *noteRepository) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	query, args, err := r.db.selectNotesQuery(userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteRepository.ListNotes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNotes(ctx, "*noteRepository.ListNotes", query, args)
}

// SearchNotes returns the notes of userID that contain query in the title
// or the content, ignoring case.
func (r *noteRepository) SearchNotes(ctx context.Context, userID, query string) ([]models.Note, error) {
	sqlQuery, args, err := r.db.searchNotesQuery(userID, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteRepository.SearchNotes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNotes(ctx, "*noteRepository.SearchNotes", sqlQuery, args)
}

func (r *noteRepository) queryNotes(ctx context.Context, funcName, query string, args []any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning note")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating notes")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}
