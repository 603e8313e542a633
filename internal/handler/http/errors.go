// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding a request, before the service layer
// is reached.
var (
	// ErrInvalidPostIDParam is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidPostIDParam = errors.New("invalid {id} path parameter")

	// ErrInvalidRequestBody is returned when the body is empty or not a post
	// payload.
	ErrInvalidRequestBody = errors.New("invalid request body")
)
