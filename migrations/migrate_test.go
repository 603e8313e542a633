// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, goose.DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(context.Background(), nil, goose.DialectSQLite3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, goose.DialectMySQL)
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestDialectFS_ContainsMigrations(t *testing.T) {
	for _, dialect := range []goose.Dialect{goose.DialectPostgres, goose.DialectSQLite3} {
		t.Run(string(dialect), func(t *testing.T) {
			fsys, err := dialectFS(dialect)
			require.NoError(t, err)

			names, err := fs.Glob(fsys, "*.sql")
			require.NoError(t, err)
			assert.Equal(t, []string{"00001_create_posts.sql", "00002_seed_posts.sql"}, names)
		})
	}
}
