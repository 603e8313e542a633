// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the reference posts
// server.
//
// It exposes the /posts CRUD routes, GET /version and the middleware chain:
// panic recovery, request tracing, access logging, gzip request decoding and
// response compression. Handlers decode requests, delegate to the service
// layer and translate errors into status codes and the plain-text messages
// of package app.
package http
