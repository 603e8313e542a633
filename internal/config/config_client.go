// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Client defaults.
const (
	DefaultRemoteAddress   = "http://localhost:8080"
	DefaultClientTimeout   = 10 * time.Second
	DefaultOwnerRef        = int64(1)
	DefaultPageSize        = 8
	DefaultRefreshInterval = time.Duration(0)
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// DefaultOwnerRef is applied to drafts created without an owner.
	DefaultOwnerRef int64
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote posts resource.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the list refresh job runs. Zero
	// disables it.
	RefreshInterval time.Duration
}

// ClientView contains terminal UI settings.
type ClientView struct {
	PageSize int
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
	View    ClientView
}

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{DefaultOwnerRef: DefaultOwnerRef},
		Adapter: Adapter{
			HTTPAddress:    DefaultRemoteAddress,
			RequestTimeout: DefaultClientTimeout,
		},
		Workers: Workers{RefreshInterval: DefaultRefreshInterval},
		View:    View{PageSize: DefaultPageSize},
	}
}

// GetClientConfig builds and validates the client configuration view. fs is
// the flag set populated by [BindClientFlags]; nil skips flags.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs, clientDefaults())
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{DefaultOwnerRef: cfg.App.DefaultOwnerRef},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		View:    ClientView{PageSize: cfg.View.PageSize},
	}
}
