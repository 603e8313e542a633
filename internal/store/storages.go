// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-post-mirror/internal/logger"

// Storages groups the repositories of the posts server.
type Storages struct {
	PostRepository PostRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		PostRepository: NewPostRepository(db, log),
	}
}
