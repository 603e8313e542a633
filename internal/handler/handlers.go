// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the posts server.
package handler

import (
	"github.com/MKhiriev/go-post-mirror/internal/config"
	"github.com/MKhiriev/go-post-mirror/internal/handler/http"
	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
