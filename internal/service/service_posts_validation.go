// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-mirror/internal/validators"
	"github.com/MKhiriev/go-post-mirror/models"
)

// PostValidationService validates ids and payloads before delegating to the
// wrapped [PostService]. Validation failures wrap [ErrInvalidDataProvided]
// together with the validator sentinel.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewPostValidator(),
	}
}

func (v *PostValidationService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPosts(ctx)
}

func (v *PostValidationService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetPost(ctx, id)
}

func (v *PostValidationService) CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePost(ctx, draft)
}

func (v *PostValidationService) UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdatePost(ctx, id, patch)
}

func (v *PostValidationService) DeletePost(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeletePost(ctx, id)
}

func (v *PostValidationService) Wrap(wrapper PostService) PostService {
	v.inner = wrapper
	return v
}
