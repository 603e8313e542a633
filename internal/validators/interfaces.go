// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks post payloads before they reach storage.
//
// [Validator] is the generic entry point; [NewPostValidator] returns the
// implementation used by the posts service. It enforces positive ids and
// owners and caps title and body length. The optional field names passed to
// Validate restrict the check to those fields.
package validators

import "context"

// Validator checks a value, optionally only the named fields of it.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
