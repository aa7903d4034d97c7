// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the client registry.
//
// Configuration is assembled from several sources. For every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (JSON, or YAML when the path ends in .yaml/.yml)
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
