// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the posts server schema and applies it with goose.
// Every supported dialect has its own directory of numbered SQL files.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

var (
	// ErrNilDB is returned when Migrate is called without a connection.
	ErrNilDB = errors.New("db is nil")
	// ErrUnsupportedDialect is returned for dialects without migrations.
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

var dialectDirs = map[goose.Dialect]string{
	goose.DialectPostgres: "postgres",
	goose.DialectSQLite3:  "sqlite3",
}

// Migrate brings the schema of db up to date using the migrations written for
// dialect ([goose.DialectPostgres] or [goose.DialectSQLite3]).
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	fsys, err := dialectFS(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFS(dialect goose.Dialect) (fs.FS, error) {
	dir, ok := dialectDirs[dialect]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDialect, dialect)
	}

	return fs.Sub(embedMigrations, dir)
}
