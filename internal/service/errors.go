// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-post-mirror/internal/state"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrPanicInOperation      = errors.New("operation panicked")
)

// RejectionError is returned by [Pending.Wait] for a rejected operation.
// Reason is the same string the store received.
type RejectionError struct {
	Op     state.Operation
	Reason string
	Err    error
}

// Error implements error.
func (e *RejectionError) Error() string {
	return e.Reason
}

// Unwrap exposes the adapter error.
func (e *RejectionError) Unwrap() error {
	return e.Err
}
