// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging values from environment variables,
// command-line flags and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the server persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and request timeout of the posts server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote endpoint used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds client background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// View holds terminal UI settings.
	View View `envPrefix:"VIEW_"`

	// FilePath is the optional path to a JSON or TOML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DefaultOwnerRef is the owner applied to created posts whose draft
	// carries none.
	// Env: APP_DEFAULT_OWNER_REF
	DefaultOwnerRef int64 `env:"DEFAULT_OWNER_REF"`
}

// Storage groups the configuration for the server storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: "postgres://" and "postgresql://" URLs open
	// PostgreSQL through pgx, anything else is treated as a SQLite file DSN.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound transport settings of the client.
type Adapter struct {
	// HTTPAddress is the base URL of the remote posts resource. A missing
	// scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background jobs.
type Workers struct {
	// RefreshInterval is the period of the list refresh job. Zero disables
	// the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// View holds terminal UI settings.
type View struct {
	// PageSize is the number of posts shown per list page.
	// Env: VIEW_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// GetStructuredConfig loads and merges the configuration from environment
// variables, the flags registered on fs (nil skips flags) and the config
// file, then fills unset fields from defaults.
func GetStructuredConfig(fs *pflag.FlagSet, defaults *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withFile().
		withDefaults(defaults).
		build()
}
