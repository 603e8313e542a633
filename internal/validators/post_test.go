// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-post-mirror/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPost() models.Post {
	return models.Post{ID: 1, Title: "title", Body: "body", OwnerRef: models.OwnerRefOf(1)}
}

func TestNewPostValidator(t *testing.T) {
	require.NotNil(t, NewPostValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewPostValidator()
	ctx := context.Background()
	post := validPost()
	draft := models.PostDraft{Title: "t", Body: "b"}
	patch := models.PostPatch{Title: "t", Body: "b"}

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "post value", obj: post},
		{name: "post pointer", obj: &post},
		{name: "draft value", obj: draft},
		{name: "draft pointer", obj: &draft},
		{name: "patch value", obj: patch},
		{name: "patch pointer", obj: &patch},
		{name: "id", obj: int64(3)},
		{name: "non-positive id", obj: int64(0), wantErr: ErrInvalidPostID},
		{name: "unsupported int", obj: 3, wantErr: ErrUnsupportedType},
		{name: "unsupported string", obj: "post", wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Post(t *testing.T) {
	v := NewPostValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Post)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Post) {}},
		{name: "empty title and body are allowed", mutate: func(p *models.Post) { p.Title, p.Body = "", "" }},
		{name: "missing owner is allowed", mutate: func(p *models.Post) { p.OwnerRef = nil }},
		{name: "zero id", mutate: func(p *models.Post) { p.ID = 0 }, wantErr: ErrInvalidPostID},
		{name: "negative id", mutate: func(p *models.Post) { p.ID = -5 }, wantErr: ErrInvalidPostID},
		{name: "title too long", mutate: func(p *models.Post) { p.Title = strings.Repeat("a", MaxTitleLength+1) }, wantErr: ErrTitleTooLong},
		{name: "title at limit", mutate: func(p *models.Post) { p.Title = strings.Repeat("a", MaxTitleLength) }},
		{name: "multibyte title counted in runes", mutate: func(p *models.Post) { p.Title = strings.Repeat("ж", MaxTitleLength) }},
		{name: "body too long", mutate: func(p *models.Post) { p.Body = strings.Repeat("b", MaxBodyLength+1) }, wantErr: ErrBodyTooLong},
		{name: "non-positive owner", mutate: func(p *models.Post) { p.OwnerRef = models.OwnerRefOf(0) }, wantErr: ErrInvalidOwnerRef},
		{name: "scoped to title ignores bad id", mutate: func(p *models.Post) { p.ID = 0 }, fields: []string{FieldTitle}},
		{name: "unknown field", mutate: func(*models.Post) {}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := validPost()
			tt.mutate(&post)

			err := v.Validate(ctx, post, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Draft(t *testing.T) {
	v := NewPostValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PostDraft{}))
	assert.ErrorIs(t, v.Validate(ctx, models.PostDraft{OwnerRef: models.OwnerRefOf(-1)}), ErrInvalidOwnerRef)
	assert.ErrorIs(t, v.Validate(ctx, models.PostDraft{Body: strings.Repeat("b", MaxBodyLength+1)}), ErrBodyTooLong)
	assert.ErrorIs(t, v.Validate(ctx, models.PostDraft{}, FieldID), ErrUnknownField)
}

func TestValidate_Patch(t *testing.T) {
	v := NewPostValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PostPatch{Title: "new"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.PostPatch{Title: strings.Repeat("t", MaxTitleLength+1)}), ErrTitleTooLong)
	assert.ErrorIs(t, v.Validate(ctx, models.PostPatch{}, FieldOwnerRef), ErrUnknownField)
}
