// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names shared by the binaries.
const (
	FlagConfig          = "config"
	FlagRemote          = "remote"
	FlagTimeout         = "timeout"
	FlagOwner           = "owner"
	FlagRefreshInterval = "refresh-interval"
	FlagPageSize        = "page-size"
	FlagAddress         = "address"
	FlagDatabaseDSN     = "database-dsn"
	FlagRequestTimeout  = "request-timeout"
	FlagAppVersion      = "app-version"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindClientFlags registers the client configuration flags on fs.
//
// Flags:
//
//	-c/--config           JSON or TOML config file path
//	-r/--remote           remote posts resource base URL
//	--timeout             outbound request timeout (e.g. "10s")
//	--owner               default owner applied to new posts
//	--refresh-interval    list refresh period, 0 disables
//	--page-size           posts per list page
func BindClientFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "config file path (JSON or TOML)")
	fs.StringP(FlagRemote, "r", "", "remote posts resource base URL")
	fs.Duration(FlagTimeout, 0, "request timeout (e.g. 10s, 1m)")
	fs.Int64(FlagOwner, 0, "default owner reference for created posts")
	fs.Duration(FlagRefreshInterval, 0, "list refresh interval, 0 disables")
	fs.Int(FlagPageSize, 0, "posts per list page")
}

// BindServerFlags registers the server configuration flags on fs.
//
// Flags:
//
//	-c/--config           JSON or TOML config file path
//	-a/--address          listen address in format [host]:[port]
//	-d/--database-dsn     database DSN
//	--request-timeout     inbound request timeout (e.g. "30s")
//	--app-version         version reported by GET /version
func BindServerFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "config file path (JSON or TOML)")
	fs.VarP(&NetAddress{}, FlagAddress, "a", "net address host:port")
	fs.StringP(FlagDatabaseDSN, "d", "", "database DSN")
	fs.Duration(FlagRequestTimeout, 0, "request timeout (e.g. 30s, 1m)")
	fs.String(FlagAppVersion, "", "application version")
}

// parseFlags collects the values of the flags explicitly set on fs.
// Unset flags stay zero so that they never shadow other sources.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	var errs []error
	fs.Visit(func(f *pflag.Flag) {
		var err error
		switch f.Name {
		case FlagConfig:
			cfg.FilePath, err = fs.GetString(f.Name)
		case FlagRemote:
			cfg.Adapter.HTTPAddress, err = fs.GetString(f.Name)
		case FlagTimeout:
			cfg.Adapter.RequestTimeout, err = fs.GetDuration(f.Name)
		case FlagOwner:
			cfg.App.DefaultOwnerRef, err = fs.GetInt64(f.Name)
		case FlagRefreshInterval:
			cfg.Workers.RefreshInterval, err = fs.GetDuration(f.Name)
		case FlagPageSize:
			cfg.View.PageSize, err = fs.GetInt(f.Name)
		case FlagAddress:
			cfg.Server.HTTPAddress = f.Value.String()
		case FlagDatabaseDSN:
			cfg.Storage.DB.DSN, err = fs.GetString(f.Name)
		case FlagRequestTimeout:
			cfg.Server.RequestTimeout, err = fs.GetDuration(f.Name)
		case FlagAppVersion:
			cfg.App.Version, err = fs.GetString(f.Name)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("error getting flag configs: %w", errors.Join(errs...))
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// An empty address renders as "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		if net.ParseIP(host) == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
