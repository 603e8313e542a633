// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Server defaults.
const (
	DefaultServerAddress = "localhost:8080"
	DefaultServerTimeout = 30 * time.Second
	DefaultDatabaseDSN   = "posts.db"
	DefaultServerVersion = "dev"
)

// ServerConfig is the posts server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
}

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: DefaultServerVersion},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDatabaseDSN}},
	}
}

// GetServerConfig builds and validates the server configuration view. fs is
// the flag set populated by [BindServerFlags]; nil skips flags.
func GetServerConfig(fs *pflag.FlagSet) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(fs, serverDefaults())
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}
	if err = serverCfg.validate(); err != nil {
		return nil, err
	}

	return serverCfg, nil
}
