// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the placeholder HTTP server.
//
// A [Server] serves until its context is cancelled and then shuts down
// gracefully, so it can run as a worker next to other long-lived jobs.
package server
