// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-post-mirror/internal/adapter"
	"github.com/MKhiriev/go-post-mirror/internal/config"
	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/state"
)

// ClientServices groups the client runtime: the state store and the
// coordinator writing to it.
type ClientServices struct {
	Store            *state.Store
	PostsCoordinator PostsCoordinator
}

// NewClientServices creates a fresh store (configured by opts) and a
// coordinator bound to postsAdapter.
func NewClientServices(postsAdapter adapter.PostsAdapter, cfg config.ClientApp, log *logger.Logger, opts ...state.Option) *ClientServices {
	opts = append([]state.Option{state.WithLogger(log)}, opts...)
	store := state.NewStore(opts...)

	return &ClientServices{
		Store:            store,
		PostsCoordinator: NewPostsCoordinator(postsAdapter, store, cfg, log),
	}
}
