// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists posts for the reference posts server. It supports
// PostgreSQL (through pgx) and SQLite (through go-sqlite3); queries are built
// with squirrel using the placeholder format of the connected dialect.
package store

import (
	"context"

	"github.com/MKhiriev/go-post-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/posts_repository_mock.go -package=mock

// PostRepository is the persistence contract of the posts server.
type PostRepository interface {
	// List returns every post ordered by id.
	List(ctx context.Context) ([]models.Post, error)

	// Get returns post id or [ErrPostNotFound].
	Get(ctx context.Context, id int64) (models.Post, error)

	// Create inserts draft and returns the stored row with its new id.
	Create(ctx context.Context, draft models.PostDraft) (models.Post, error)

	// Update replaces title and body of post id and returns the stored row,
	// or [ErrPostNotFound].
	Update(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error)

	// Delete removes post id or returns [ErrPostNotFound].
	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
