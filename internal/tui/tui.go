// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal front end of the posts
// client. It renders store snapshots and forwards user intents to the
// operation coordinator; it never changes state on its own.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/service"
	"github.com/MKhiriev/go-post-mirror/internal/state"
	"github.com/MKhiriev/go-post-mirror/models"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultPageSize = 8

type TUI struct {
	services  *service.ClientServices
	pageSize  int
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, pageSize int, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &TUI{
		services:  services,
		pageSize:  pageSize,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.services.PostsCoordinator, t.services.Store.Snapshot(), t.pageSize, t.buildInfo.String())

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.services.Store.Subscribe(func(s state.State) {
		go program.Send(stateChangedMsg{state: s})
	})
	defer unsubscribe()

	_, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Msg("tui stopped with error")
		return fmt.Errorf("run tui: %w", err)
	}

	t.logger.Info().Msg("tui stopped")
	return nil
}
