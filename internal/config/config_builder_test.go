// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeTempConfig(t, "config.json", data)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "from-env"}},
		&StructuredConfig{App: App{Version: "from-file", DefaultOwnerRef: 7}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, int64(7), cfg.App.DefaultOwnerRef)
}

func TestWithDefaults_FillsOnlyUnsetFields(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults(&StructuredConfig{View: View{PageSize: 8}, App: App{Version: "dev"}}).
		build()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.View.PageSize)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{View: View{PageSize: 3}})
	cfg, err = b.withDefaults(&StructuredConfig{View: View{PageSize: 8}}).build()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.View.PageSize)
}

// ── env ───────────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsVariables(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://remote:9000")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "3s")
	t.Setenv("APP_DEFAULT_OWNER_REF", "42")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "1m")
	t.Setenv("VIEW_PAGE_SIZE", "5")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@db/posts")

	cfg, err := newConfigBuilder().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "http://remote:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, int64(42), cfg.App.DefaultOwnerRef)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, 5, cfg.View.PageSize)
	assert.Equal(t, "postgres://u:p@db/posts", cfg.Storage.DB.DSN)
}

func TestWithEnv_InvalidValue(t *testing.T) {
	t.Setenv("VIEW_PAGE_SIZE", "many")

	_, err := newConfigBuilder().withEnv().build()
	require.Error(t, err)
}

// ── file ──────────────────────────────────────────────────────────────────────

func TestWithFile_JSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "remote:1234", "request_timeout": "2s"},
		"view":    map[string]any{"page_size": 4},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	cfg, err := b.withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "remote:1234", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4, cfg.View.PageSize)
}

func TestWithFile_TOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", []byte(`
[server]
http_address = "0.0.0.0:9090"
request_timeout = "45s"

[storage.db]
dsn = "file:posts.db"

[app]
version = "1.2.3"
`))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	cfg, err := b.withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "file:posts.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "1.2.3", cfg.App.Version)
}

func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "nope.json")})

	_, err := b.withFile().build()
	require.Error(t, err)
}

func TestWithFile_UnsupportedExtension(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", []byte("a: b"))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	_, err := b.withFile().build()
	assert.ErrorIs(t, err, ErrUnsupportedConfigFormat)
}

func TestWithFile_FileDoesNotOverrideEnv(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"view": map[string]any{"page_size": 4},
	})
	t.Setenv("CONFIG", path)
	t.Setenv("VIEW_PAGE_SIZE", "6")

	cfg, err := newConfigBuilder().withEnv().withFile().build()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.View.PageSize)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

// ── role views ────────────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultRemoteAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultClientTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultOwnerRef, cfg.App.DefaultOwnerRef)
	assert.Equal(t, DefaultPageSize, cfg.View.PageSize)
	assert.Zero(t, cfg.Workers.RefreshInterval)
}

func TestGetClientConfig_FlagsOverrideDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	BindClientFlags(fs)
	require.NoError(t, fs.Parse([]string{"-r", "http://example.test", "--page-size", "3", "--owner", "9"}))

	cfg, err := GetClientConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3, cfg.View.PageSize)
	assert.Equal(t, int64(9), cfg.App.DefaultOwnerRef)
}

func TestGetClientConfig_InvalidOwner(t *testing.T) {
	t.Setenv("APP_DEFAULT_OWNER_REF", "-1")

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetClientConfig_NegativeRefresh(t *testing.T) {
	t.Setenv("WORKERS_REFRESH_INTERVAL", "-1s")

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

func TestGetServerConfig_Defaults(t *testing.T) {
	cfg, err := GetServerConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultServerTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultDatabaseDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultServerVersion, cfg.App.Version)
}

func TestGetServerConfig_Flags(t *testing.T) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	BindServerFlags(fs)
	require.NoError(t, fs.Parse([]string{"-a", "127.0.0.1:9999", "-d", "postgres://db/posts", "--app-version", "2.0.0"}))

	cfg, err := GetServerConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://db/posts", cfg.Storage.DB.DSN)
	assert.Equal(t, "2.0.0", cfg.App.Version)
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := &ServerConfig{Server: Server{HTTPAddress: ":8080"}}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = &ServerConfig{Storage: Storage{DB: DB{DSN: "posts.db"}}}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
