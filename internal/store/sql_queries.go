// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-post-mirror/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	postsTable    = "posts"
	returningPost = "RETURNING id, title, body, owner_ref"
)

var postColumns = []string{"id", "title", "body", "owner_ref"}

func postIDCondition(id int64) sq.Eq {
	return sq.Eq{"id": id}
}

func buildSelectAllPostsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(postColumns...).
		From(postsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectPostByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(postColumns...).
		From(postsTable).
		Where(postIDCondition(id)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertPostQuery(b sq.StatementBuilderType, draft models.PostDraft) (string, []any, error) {
	query, args, err := b.Insert(postsTable).
		Columns("title", "body", "owner_ref").
		Values(draft.Title, draft.Body, ownerArg(draft.OwnerRef)).
		Suffix(returningPost).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdatePostQuery(b sq.StatementBuilderType, id int64, patch models.PostPatch) (string, []any, error) {
	query, args, err := b.Update(postsTable).
		Set("title", patch.Title).
		Set("body", patch.Body).
		Where(postIDCondition(id)).
		Suffix(returningPost).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeletePostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Delete(postsTable).
		Where(postIDCondition(id)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func ownerArg(owner *int64) any {
	if owner == nil {
		return nil
	}
	return *owner
}
