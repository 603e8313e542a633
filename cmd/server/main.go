// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-post-mirror/internal/config"
	"github.com/MKhiriev/go-post-mirror/internal/handler"
	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/server"
	"github.com/MKhiriev/go-post-mirror/internal/service"
	"github.com/MKhiriev/go-post-mirror/internal/store"
	"github.com/MKhiriev/go-post-mirror/models"
	"github.com/spf13/cobra"
)

const serverRole = "post-mirror-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "post-mirror-server",
		Short:        "Serve the posts resource over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo().String())
			return run(cmd)
		},
	}

	config.BindServerFlags(root.Flags())

	return root
}

func run(cmd *cobra.Command) error {
	log := logger.NewLogger(serverRole)

	cfg, err := config.GetServerConfig(cmd.Flags())
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}
	if cfg.App.Version == config.DefaultServerVersion && buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Err(err).Msg("error connecting to database")
		return err
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Msg("error migrating database")
		return err
	}

	services, err := service.NewServices(store.NewStorages(db, log), *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return err
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		return err
	}

	return nil
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
