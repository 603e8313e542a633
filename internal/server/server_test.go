// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-post-mirror/internal/config"
	"github.com/MKhiriev/go-post-mirror/internal/handler"
	handlerhttp "github.com/MKhiriev/go-post-mirror/internal/handler/http"
	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticVersion string

func (v staticVersion) GetAppVersion(context.Context) string { return string(v) }

func testHandlers() *handler.Handlers {
	services := &service.Services{AppInfoService: staticVersion("v-test")}
	return &handler.Handlers{HTTP: handlerhttp.NewHandler(services, logger.Nop())}
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Nil(t, s)
	assert.True(t, errors.Is(err, errNoServersAreCreated))
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_ServesUntilContextDone(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_ServesRequests(t *testing.T) {
	impl, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	srv := impl.(*server)

	ln, err := srv.httpServer.listen()
	require.NoError(t, err)
	go func() { _ = srv.httpServer.serve(ln) }()
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	resp, err := http.Get(fmt.Sprintf("http://%s/version", ln.Addr()))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRunServer_ListenError(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:-1"}, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())

	assert.Error(t, err)
}
