// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned when there is no posts handler or
	// no listen address to serve it on.
	errNoServersAreCreated = errors.New("no servers are created")
	errServeFailed         = errors.New("posts HTTP server stopped")
	errShutdownFailed      = errors.New("posts HTTP server shutdown failed")
)
