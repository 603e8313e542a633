// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-mirror/internal/config"
	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/service"
	"github.com/MKhiriev/go-post-mirror/internal/workers"
)

var errNilUI = errors.New("client ui is not provided")

// App runs the UI with the refresh job alongside it.
type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNilUI
	}

	refreshJob := workers.NewRefreshJob(services.PostsCoordinator, cfg, log)

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(refreshJob),
		logger:   log,
	}, nil
}

// Run blocks until the UI returns. Background workers are stopped and
// in-flight operations are awaited before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Run(ctx)

	err := a.ui.Run(ctx)

	a.workers.Stop()
	cancel()
	a.services.PostsCoordinator.Wait()

	if err != nil {
		return fmt.Errorf("client ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
