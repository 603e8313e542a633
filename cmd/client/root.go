// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-post-mirror/internal/adapter"
	"github.com/MKhiriev/go-post-mirror/internal/client"
	"github.com/MKhiriev/go-post-mirror/internal/config"
	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/service"
	"github.com/MKhiriev/go-post-mirror/internal/state"
	"github.com/MKhiriev/go-post-mirror/internal/tui"
	"github.com/MKhiriev/go-post-mirror/models"
	"github.com/spf13/cobra"
)

const (
	clientRole    = "post-mirror-client"
	flagLogFile   = "log-file"
	flagDropStale = "drop-stale"
)

// runtime is the client stack shared by the subcommands.
type runtime struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	log      *logger.Logger
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:           "post-mirror",
		Short:         "Browse and edit a remote posts collection",
		Long:          "post-mirror keeps a local view of a remote posts resource and lets you list, read, create, edit and delete posts.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.runTUI(cmd)
		},
	}

	config.BindClientFlags(root.PersistentFlags())
	root.PersistentFlags().String(flagLogFile, "", "log file path (default: \"logs\" next to the binary)")
	root.PersistentFlags().Bool(flagDropStale, false, "ignore results older than the latest request for the same post")

	root.AddCommand(
		newListCmd(rt),
		newGetCmd(rt),
		newCreateCmd(rt),
		newUpdateCmd(rt),
		newDeleteCmd(rt),
		newVersionCmd(),
	)

	return root
}

func (rt *runtime) init(cmd *cobra.Command) error {
	if cmd.Name() == versionCmdName {
		return nil
	}

	logPath, _ := cmd.Flags().GetString(flagLogFile)
	rt.log = logger.NewClientLogger(clientRole, logPath)

	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	rt.cfg = cfg

	postsAdapter, err := adapter.NewHTTPPostsAdapter(cfg.Adapter, rt.log)
	if err != nil {
		return fmt.Errorf("create posts adapter: %w", err)
	}

	var opts []state.Option
	if dropStale, _ := cmd.Flags().GetBool(flagDropStale); dropStale {
		opts = append(opts, state.WithStaleGuard())
	}

	rt.services = service.NewClientServices(postsAdapter, cfg.App, rt.log, opts...)
	return nil
}

func (rt *runtime) runTUI(cmd *cobra.Command) error {
	ui := tui.New(rt.services, rt.cfg.View.PageSize, buildInfo(), rt.log)

	app, err := client.NewApp(rt.services, ui, rt.cfg.Workers, rt.log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(cmd.Context())
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
