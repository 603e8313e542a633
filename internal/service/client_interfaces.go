// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-post-mirror/models"
)

// PostsCoordinator defines the client-side contract for running CRUD
// operations against the remote posts resource and reporting their lifecycle
// to the state store.
//
// Every operation dispatches a pending event before it returns, performs the
// remote call on its own goroutine and dispatches exactly one terminal event
// (fulfilled or rejected) when the call settles. The returned [Pending] handle
// lets callers wait for that outcome; the store already reflects it by the
// time the handle completes.
type PostsCoordinator interface {
	// FetchAll replaces the cached list with the server's collection.
	FetchAll(ctx context.Context) *Pending[[]models.Post]

	// FetchOne loads post id into the selection.
	FetchOne(ctx context.Context, id int64) *Pending[models.Post]

	// Create stores draft remotely and prepends the server copy to the list.
	// A draft without an owner gets the configured default owner.
	Create(ctx context.Context, draft models.PostDraft) *Pending[models.Post]

	// Update replaces title and body of post id and selects the result.
	Update(ctx context.Context, id int64, patch models.PostPatch) *Pending[models.Post]

	// Delete removes post id remotely and from the list.
	Delete(ctx context.Context, id int64) *Pending[struct{}]

	// NavigateAway clears the selection and resets the status to idle.
	NavigateAway()

	// DismissMessage clears a success message.
	DismissMessage()

	// Wait blocks until every operation started so far has settled.
	Wait()
}
