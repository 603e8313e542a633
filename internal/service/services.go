// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-post-mirror/internal/config"
	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/store"
)

// Services groups the server-side services.
type Services struct {
	PostService    PostService
	AppInfoService AppInfoService
}

// NewServices wires the post service (validation wrapper around the
// repository-backed implementation) and the app info service.
func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	postService := NewPostValidationService().Wrap(NewPostService(storages.PostRepository, logger))

	return &Services{
		PostService:    postService,
		AppInfoService: appInfoService,
	}, nil
}
