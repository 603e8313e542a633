// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the posts server: startup, signal
// handling and graceful shutdown.
package server
