// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by [RemoteError] for well-known HTTP statuses.
// Callers match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("post not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrorKind classifies a [RemoteError].
type ErrorKind int

const (
	// KindTransport means the request never produced an HTTP response
	// (network unreachable, timeout, cancelled context).
	KindTransport ErrorKind = iota + 1
	// KindStatus means the server answered with a non-2xx status.
	KindStatus
	// KindDecode means the response body could not be parsed.
	KindDecode
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// RemoteError is the single error type returned by [PostsAdapter]
// implementations.
type RemoteError struct {
	Kind ErrorKind
	// StatusCode is set for KindStatus only.
	StatusCode int
	// Detail is a short human-readable description (response body, driver
	// message) surfaced to the user as-is.
	Detail string
	Err    error
}

// Error implements error.
func (e *RemoteError) Error() string {
	switch {
	case e.Kind == KindStatus && e.Detail != "":
		return fmt.Sprintf("%v (status %d): %s", e.Err, e.StatusCode, e.Detail)
	case e.Kind == KindStatus:
		return fmt.Sprintf("%v (status %d)", e.Err, e.StatusCode)
	case e.Detail != "":
		return fmt.Sprintf("%s error: %s", e.Kind, e.Detail)
	default:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
}

// Unwrap exposes the wrapped sentinel or driver error.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a remote "no such post" failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func transportError(err error) *RemoteError {
	return &RemoteError{Kind: KindTransport, Detail: err.Error(), Err: err}
}

func decodeError(err error) *RemoteError {
	return &RemoteError{Kind: KindDecode, Detail: err.Error(), Err: err}
}
