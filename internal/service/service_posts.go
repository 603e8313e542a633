// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/store"
	"github.com/MKhiriev/go-post-mirror/models"
)

type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepository.List(ctx)
}

func (p *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return p.postRepository.Get(ctx, id)
}

func (p *postService) CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	post, err := p.postRepository.Create(ctx, draft)
	if err != nil {
		return models.Post{}, err
	}

	logger.FromContext(ctx).Info().Int64("post_id", post.ID).Msg("post created")
	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	return p.postRepository.Update(ctx, id, patch)
}

func (p *postService) DeletePost(ctx context.Context, id int64) error {
	if err := p.postRepository.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("post_id", id).Msg("post deleted")
	return nil
}
