// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's view of the remote posts resource.
//
// [PostsAdapter] decouples the operation coordinator from the transport. The
// package ships a resty-based HTTP implementation ([NewHTTPPostsAdapter]).
// Every failure is a *[RemoteError] classified as transport, status or decode;
// status failures wrap the sentinels in errors.go so that callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-post-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/posts_adapter_mock.go -package=mock

// PostsAdapter issues CRUD requests against the remote posts collection.
type PostsAdapter interface {
	// ListAll returns the whole collection in server order.
	ListAll(ctx context.Context) ([]models.Post, error)

	// GetByID returns one post. Fails with [ErrNotFound] when the server
	// has no such id.
	GetByID(ctx context.Context, id int64) (models.Post, error)

	// Create stores a new post; the server assigns the id and returns the
	// stored record.
	Create(ctx context.Context, draft models.PostDraft) (models.Post, error)

	// Update replaces title and body of post id and returns the
	// authoritative record.
	Update(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error)

	// Remove deletes post id. Fails with [ErrNotFound] when it does not
	// exist.
	Remove(ctx context.Context, id int64) error
}
