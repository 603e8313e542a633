// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the posts client and the posts server.
//
// Configuration is assembled from multiple sources. For every field the first
// source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (JSON, or TOML when the file name ends in ".toml")
//  4. Role defaults
//
// The main entry points are [GetClientConfig] and [GetServerConfig], which
// project the merged [StructuredConfig] into role-specific views.
package config
