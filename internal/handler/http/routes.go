// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	postsRoute   = "/posts"
	postRoute    = "/posts/{id}"
	versionRoute = "/version"

	compressionLevel = 5
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGzipRequest)
	router.Use(middleware.Compress(compressionLevel, "application/json"))

	router.Get(versionRoute, h.getServerVersion)

	router.Get(postsRoute, h.listPosts)
	router.Post(postsRoute, h.createPost)
	router.Get(postRoute, h.getPost)
	router.Put(postRoute, h.updatePost)
	router.Delete(postRoute, h.deletePost)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
