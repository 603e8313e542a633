// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPostNotFound is returned when no row matches the requested id.
	ErrPostNotFound = errors.New("post not found")

	// ErrPostAlreadyExists is returned when an insert violates the primary
	// key or another unique constraint.
	ErrPostAlreadyExists = errors.New("post already exists")

	// ErrStorageUnavailable is returned when a retryable database error
	// persists after all attempts.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")

	// ErrUnsupportedDSN is returned when no driver matches the DSN.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan post row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan post rows")
)
