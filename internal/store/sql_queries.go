// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	usersTable = "users"
	notesTable = "notes"

	colUserID       = "user_id"
	colFullName     = "full_name"
	colEmail        = "email"
	colPasswordHash = "password_hash"
	colCreatedOn    = "created_on"

	colNoteID    = "note_id"
	colTitle     = "title"
	colContent   = "content"
	colTags      = "tags"
	colIsPinned  = "is_pinned"
	colCreatedAt = "created_at"

	likeEscapeChar = `\`
)

var (
	userColumns = []string{colUserID, colFullName, colEmail, colPasswordHash, colCreatedOn}
	noteColumns = []string{colNoteID, colUserID, colTitle, colContent, colTags, colIsPinned, colCreatedAt}

	// notesOrder lists pinned notes first, then in insertion order.
	// UUIDv7 note IDs break ties between equal timestamps.
	notesOrder = []string{colIsPinned + " DESC", colCreatedAt + " ASC", colNoteID + " ASC"}

	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.FullName, user.Email, user.PasswordHash, user.CreatedOn).
		Suffix(returning(userColumns)).
		ToSql()
}

func (db *DB) selectUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func (db *DB) userExistsQuery(userID string) (string, []any, error) {
	return db.builder.
		Select("1").
		From(usersTable).
		Where(sq.Eq{colUserID: userID}).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
}

func (db *DB) insertNoteQuery(note models.Note) (string, []any, error) {
	return db.builder.
		Insert(notesTable).
		Columns(noteColumns...).
		Values(note.NoteID, note.UserID, note.Title, note.Content, note.Tags, note.IsPinned, note.CreatedAt).
		Suffix(returning(noteColumns)).
		ToSql()
}

// updateNoteQuery sets the non-nil fields of update in a fixed column order.
// It fails if no field is set.
func (db *DB) updateNoteQuery(update models.NoteUpdate) (string, []any, error) {
	query := db.builder.Update(notesTable)

	if update.Title != nil {
		query = query.Set(colTitle, *update.Title)
	}
	if update.Content != nil {
		query = query.Set(colContent, *update.Content)
	}
	if update.Tags != nil {
		query = query.Set(colTags, *update.Tags)
	}
	if update.IsPinned != nil {
		query = query.Set(colIsPinned, *update.IsPinned)
	}

	return query.
		Where(sq.Eq{colNoteID: update.NoteID, colUserID: update.UserID}).
		Suffix(returning(noteColumns)).
		ToSql()
}

func (db *DB) deleteNoteQuery(userID, noteID string) (string, []any, error) {
	return db.builder.
		Delete(notesTable).
		Where(sq.Eq{colNoteID: noteID, colUserID: userID}).
		ToSql()
}

func (db *DB) selectNotesQuery(userID string) (string, []any, error) {
	return db.builder.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(notesOrder...).
		ToSql()
}

// searchNotesQuery matches query as a literal, case-insensitive substring of
// the title or the content.
func (db *DB) searchNotesQuery(userID, query string) (string, []any, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	likeExpr := "LOWER(%s) LIKE ? ESCAPE '" + likeEscapeChar + "'"

	return db.builder.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{colUserID: userID}).
		Where(sq.Or{
			sq.Expr(strings.Replace(likeExpr, "%s", colTitle, 1), pattern),
			sq.Expr(strings.Replace(likeExpr, "%s", colContent, 1), pattern),
		}).
		OrderBy(notesOrder...).
		ToSql()
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.FullName, &user.Email, &user.PasswordHash, &user.CreatedOn)
	return user, err
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Content, &note.Tags, &note.IsPinned, &note.CreatedAt)
	return note, err
}
