// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the placeholder users API: the same /users resource
// the remote adapter consumes, backed by an in-memory directory. It is used
// for offline development and as a realistic remote in tests.
//
// Every request gets a trace id (reused from X-Trace-ID when the caller
// sends one) and one access log line.
package http
