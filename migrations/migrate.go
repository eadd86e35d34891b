// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the notes database and applies
// it with goose. Each supported database/sql driver has its own directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrUnsupportedDriver is returned for drivers without embedded migrations.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

type dialect struct {
	name goose.Dialect
	dir  string
}

var dialects = map[string]dialect{
	"pgx":     {name: goose.DialectPostgres, dir: "postgres"},
	"sqlite3": {name: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies all pending migrations for driver ("pgx" or "sqlite3").
// Goose output is routed to log; a nil log silences it.
func Migrate(db *sql.DB, driver string, log goose.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDriver, driver)
	}

	if log == nil {
		log = goose.NopLogger()
	}
	goose.SetLogger(log)
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(d.name)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
