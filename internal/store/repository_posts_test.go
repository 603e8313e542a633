// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postRowColumns = []string{"id", "title", "body", "owner_ref"}

func newTestPostRepo(t *testing.T, dialect Dialect) (PostRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return NewPostRepository(NewDB(conn, dialect, logger.Nop()), logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestList_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	rows := sqlmock.NewRows(postRowColumns).
		AddRow(1, "a", "x", 1).
		AddRow(2, "b", "y", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, body, owner_ref FROM posts ORDER BY id")).
		WillReturnRows(rows)

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(1), *posts[0].OwnerRef)
	assert.Nil(t, posts[1].OwnerRef)
	assert.Equal(t, "b", posts[1].Title)
}

func TestList_Empty(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectSQLite)

	mock.ExpectQuery("SELECT (.+) FROM posts").WillReturnRows(sqlmock.NewRows(postRowColumns))

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestList_RetriesRetryableErrors(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT (.+) FROM posts").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT (.+) FROM posts").WillReturnRows(sqlmock.NewRows(postRowColumns).AddRow(1, "a", "x", 1))

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestList_GivesUpAfterMaxAttempts(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectSQLite)

	for i := 0; i < maxAttempts; i++ {
		mock.ExpectQuery("SELECT (.+) FROM posts").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	}

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestList_NonRetryableError(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT (.+) FROM posts").WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestGet_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, body, owner_ref FROM posts WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(postRowColumns).AddRow(7, "seven", "b", 3))

	post, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.Post{ID: 7, Title: "seven", Body: "b", OwnerRef: models.OwnerRefOf(3)}, post)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, body, owner_ref FROM posts WHERE id = ?")).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts (title,body,owner_ref) VALUES ($1,$2,$3) RETURNING id, title, body, owner_ref")).
		WithArgs("t", "b", int64(1)).
		WillReturnRows(sqlmock.NewRows(postRowColumns).AddRow(101, "t", "b", 1))

	post, err := repo.Create(context.Background(), models.PostDraft{Title: "t", Body: "b", OwnerRef: models.OwnerRefOf(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(101), post.ID)
}

func TestCreate_WithoutOwner(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts (title,body,owner_ref) VALUES (?,?,?)")).
		WithArgs("t", "b", nil).
		WillReturnRows(sqlmock.NewRows(postRowColumns).AddRow(4, "t", "b", nil))

	post, err := repo.Create(context.Background(), models.PostDraft{Title: "t", Body: "b"})
	require.NoError(t, err)
	assert.Nil(t, post.OwnerRef)
}

func TestCreate_UniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		err     error
	}{
		{name: "postgres", dialect: DialectPostgres, err: pgError(pgerrcode.UniqueViolation)},
		{name: "sqlite", dialect: DialectSQLite, err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPostRepo(t, tt.dialect)
			mock.ExpectQuery("INSERT INTO posts").WillReturnError(tt.err)

			_, err := repo.Create(context.Background(), models.PostDraft{Title: "t"})
			assert.ErrorIs(t, err, ErrPostAlreadyExists)
		})
	}
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestUpdate_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE posts SET title = $1, body = $2 WHERE id = $3 RETURNING id, title, body, owner_ref")).
		WithArgs("t2", "b2", int64(3)).
		WillReturnRows(sqlmock.NewRows(postRowColumns).AddRow(3, "t2", "b2", 1))

	post, err := repo.Update(context.Background(), 3, models.PostPatch{Title: "t2", Body: "b2"})
	require.NoError(t, err)
	assert.Equal(t, "t2", post.Title)
	assert.Equal(t, "b2", post.Body)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	mock.ExpectQuery("UPDATE posts").WillReturnRows(sqlmock.NewRows(postRowColumns))

	_, err := repo.Update(context.Background(), 3, models.PostPatch{})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectPostgres)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 5))
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newTestPostRepo(t, DialectSQLite)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = ?")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 5), ErrPostNotFound)
}

func TestDelete_CancelledContext(t *testing.T) {
	repo, _ := newTestPostRepo(t, DialectSQLite)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Delete(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrPostNotFound)
}
