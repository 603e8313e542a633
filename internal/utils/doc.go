// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the posts server and
// client: context keys, JSON response writing, request body decoding, trace
// identifiers and the preconfigured resty HTTP client.
package utils
