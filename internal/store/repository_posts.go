// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/models"
)

const (
	maxAttempts    = 3
	retryBaseDelay = 50 * time.Millisecond
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
//
// Every call is retried up to maxAttempts times when the dialect's
// [ErrorClassificator] reports the failure as [Retryable].
type postRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, log *logger.Logger) PostRepository {
	log.Debug().Str("dialect", string(db.dialect)).Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: log,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	query, args, err := buildSelectAllPostsQuery(r.db.builder)
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	err = r.withRetry(ctx, "List", func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		posts = make([]models.Post, 0)
		for rows.Next() {
			post, err := scanPost(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			posts = append(posts, post)
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) Get(ctx context.Context, id int64) (models.Post, error) {
	query, args, err := buildSelectPostByIDQuery(r.db.builder, id)
	if err != nil {
		return models.Post{}, err
	}

	return r.queryOne(ctx, "Get", query, args)
}

func (r *postRepository) Create(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	query, args, err := buildInsertPostQuery(r.db.builder, draft)
	if err != nil {
		return models.Post{}, err
	}

	post, err := r.queryOne(ctx, "Create", query, args)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return models.Post{}, ErrPostAlreadyExists
		}
		return models.Post{}, err
	}

	return post, nil
}

func (r *postRepository) Update(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	query, args, err := buildUpdatePostQuery(r.db.builder, id, patch)
	if err != nil {
		return models.Post{}, err
	}

	return r.queryOne(ctx, "Update", query, args)
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeletePostQuery(r.db.builder, id)
	if err != nil {
		return err
	}

	return r.withRetry(ctx, "Delete", func() error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return ErrPostNotFound
		}
		return nil
	})
}

// queryOne runs a single-row query and maps sql.ErrNoRows to
// [ErrPostNotFound].
func (r *postRepository) queryOne(ctx context.Context, op, query string, args []any) (models.Post, error) {
	var post models.Post
	err := r.withRetry(ctx, op, func() error {
		var err error
		post, err = scanPost(r.db.QueryRowContext(ctx, query, args...))
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrPostNotFound
		case err != nil:
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return nil
	})
	if err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (r *postRepository) withRetry(ctx context.Context, op string, fn func() error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil || r.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).
			Str("func", "*postRepository."+op).
			Int("attempt", attempt).
			Msg("retryable database error")

		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBaseDelay * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

func scanPost(row rowScanner) (models.Post, error) {
	var (
		post  models.Post
		owner sql.NullInt64
	)
	if err := row.Scan(&post.ID, &post.Title, &post.Body, &owner); err != nil {
		return models.Post{}, err
	}
	if owner.Valid {
		post.OwnerRef = models.OwnerRefOf(owner.Int64)
	}

	return post, nil
}
