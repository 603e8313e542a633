// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-post-mirror/internal/adapter"
	"github.com/MKhiriev/go-post-mirror/internal/config"
	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/state"
	"github.com/MKhiriev/go-post-mirror/internal/utils"
	"github.com/MKhiriev/go-post-mirror/models"
)

type postsCoordinator struct {
	adapter adapter.PostsAdapter
	store   *state.Store

	defaultOwnerRef int64

	wg     sync.WaitGroup
	logger *logger.Logger
}

// NewPostsCoordinator creates a [PostsCoordinator] that calls postsAdapter and
// reports every outcome to store.
func NewPostsCoordinator(postsAdapter adapter.PostsAdapter, store *state.Store, cfg config.ClientApp, log *logger.Logger) PostsCoordinator {
	return &postsCoordinator{
		adapter:         postsAdapter,
		store:           store,
		defaultOwnerRef: cfg.DefaultOwnerRef,
		logger:          log,
	}
}

func (c *postsCoordinator) FetchAll(ctx context.Context) *Pending[[]models.Post] {
	return run(c, ctx, state.OpFetchAll, state.ListIdentity,
		func(ctx context.Context) ([]models.Post, error) {
			return c.adapter.ListAll(ctx)
		},
		func(token uint64, posts []models.Post) state.Event {
			return state.FetchAllFulfilled(token, posts)
		},
	)
}

func (c *postsCoordinator) FetchOne(ctx context.Context, id int64) *Pending[models.Post] {
	return run(c, ctx, state.OpFetchOne, state.PostIdentity(id),
		func(ctx context.Context) (models.Post, error) {
			return c.adapter.GetByID(ctx, id)
		},
		func(token uint64, post models.Post) state.Event {
			return state.FetchOneFulfilled(token, id, post)
		},
	)
}

func (c *postsCoordinator) Create(ctx context.Context, draft models.PostDraft) *Pending[models.Post] {
	if draft.OwnerRef == nil && c.defaultOwnerRef > 0 {
		draft.OwnerRef = models.OwnerRefOf(c.defaultOwnerRef)
	}

	return run(c, ctx, state.OpCreate, "",
		func(ctx context.Context) (models.Post, error) {
			return c.adapter.Create(ctx, draft)
		},
		state.CreateFulfilled,
	)
}

func (c *postsCoordinator) Update(ctx context.Context, id int64, patch models.PostPatch) *Pending[models.Post] {
	return run(c, ctx, state.OpUpdate, state.PostIdentity(id),
		func(ctx context.Context) (models.Post, error) {
			return c.adapter.Update(ctx, id, patch)
		},
		func(token uint64, post models.Post) state.Event {
			return state.UpdateFulfilled(token, id, post)
		},
	)
}

func (c *postsCoordinator) Delete(ctx context.Context, id int64) *Pending[struct{}] {
	return run(c, ctx, state.OpDelete, state.PostIdentity(id),
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, c.adapter.Remove(ctx, id)
		},
		func(token uint64, _ struct{}) state.Event {
			return state.DeleteFulfilled(token, id)
		},
	)
}

func (c *postsCoordinator) NavigateAway() {
	c.store.Dispatch(state.NavigatedAway())
}

func (c *postsCoordinator) DismissMessage() {
	c.store.Dispatch(state.MessageDismissed())
}

func (c *postsCoordinator) Wait() {
	c.wg.Wait()
}

// run dispatches the pending event of op, then performs call on a new
// goroutine and dispatches its single terminal event. The handle settles
// after the terminal event has been applied.
func run[T any](
	c *postsCoordinator,
	ctx context.Context,
	op state.Operation,
	identity string,
	call func(ctx context.Context) (T, error),
	fulfilled func(token uint64, value T) state.Event,
) *Pending[T] {
	token := c.store.NextToken()
	pending := newPending[T](token)

	traceID := utils.NewTraceID()
	ctx = utils.WithTraceID(ctx, traceID)
	log := c.logger.With().
		Str("op", op.String()).
		Str("identity", identity).
		Uint64("token", token).
		Str("trace_id", traceID).
		Logger()

	c.store.Dispatch(state.OperationPending(op, identity, token))
	log.Debug().Msg("operation started")

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		value, err := safeCall(ctx, call)
		if err != nil {
			reason := rejectionReason(op, err)
			log.Warn().Err(err).Str("reason", reason).Msg("operation rejected")
			c.store.Dispatch(state.OperationRejected(op, identity, token, reason))

			var zero T
			pending.settle(zero, &RejectionError{Op: op, Reason: reason, Err: err})
			return
		}

		c.store.Dispatch(fulfilled(token, value))
		log.Debug().Msg("operation fulfilled")
		pending.settle(value, nil)
	}()

	return pending
}

// safeCall turns a panic inside call into an error so that the operation
// still settles with exactly one terminal event.
func safeCall[T any](ctx context.Context, call func(ctx context.Context) (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicInOperation, r)
		}
	}()

	return call(ctx)
}
