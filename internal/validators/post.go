// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-post-mirror/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the server-assigned post identifier.
	FieldID = "id"

	// FieldTitle targets the post title.
	FieldTitle = "title"

	// FieldBody targets the post body.
	FieldBody = "body"

	// FieldOwnerRef targets the optional owner reference ("userId").
	FieldOwnerRef = "owner_ref"
)

// Length limits in runes. Empty titles and bodies are accepted.
const (
	MaxTitleLength = 255
	MaxBodyLength  = 10_000
)

// PostValidator implements [Validator] for posts and their request payloads.
type PostValidator struct{}

// NewPostValidator constructs a new PostValidator and returns it as the
// Validator interface.
func NewPostValidator() Validator {
	return &PostValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Post / *models.Post
//   - models.PostDraft / *models.PostDraft
//   - models.PostPatch / *models.PostPatch
//   - int64 (a post id)
//
// Returns ErrUnsupportedType for anything else.
func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Post:
		return v.validatePost(ctx, value, fields...)
	case *models.Post:
		return v.validatePost(ctx, *value, fields...)

	case models.PostDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.PostDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.PostPatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.PostPatch:
		return v.validatePatch(ctx, *value, fields...)

	case int64:
		return validateID(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validatePost(_ context.Context, post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldBody, FieldOwnerRef}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			err = validateID(post.ID)
		case FieldTitle:
			err = validateTitle(post.Title)
		case FieldBody:
			err = validateBody(post.Body)
		case FieldOwnerRef:
			err = validateOwnerRef(post.OwnerRef)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *PostValidator) validateDraft(_ context.Context, draft models.PostDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldBody, FieldOwnerRef}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = validateTitle(draft.Title)
		case FieldBody:
			err = validateBody(draft.Body)
		case FieldOwnerRef:
			err = validateOwnerRef(draft.OwnerRef)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *PostValidator) validatePatch(_ context.Context, patch models.PostPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldBody}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = validateTitle(patch.Title)
		case FieldBody:
			err = validateBody(patch.Body)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateID(id int64) error {
	if id <= 0 {
		return ErrInvalidPostID
	}
	return nil
}

func validateTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateBody(body string) error {
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return ErrBodyTooLong
	}
	return nil
}

// validateOwnerRef accepts a missing owner; a present one must be positive.
func validateOwnerRef(owner *int64) error {
	if owner != nil && *owner <= 0 {
		return ErrInvalidOwnerRef
	}
	return nil
}
