// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPostID   = errors.New("invalid post ID")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrBodyTooLong     = errors.New("body is too long")
	ErrInvalidOwnerRef = errors.New("invalid owner reference")
)
