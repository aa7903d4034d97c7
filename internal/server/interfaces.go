// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
)

// Server defines the lifecycle of a transport server managed by this
// package.
type Server interface {
	// Run starts serving requests and blocks until ctx is cancelled or the
	// listener fails. It returns nil after a graceful shutdown.
	Run(ctx context.Context) error

	// Addr returns the bound listen address, nil before Run has bound it.
	Addr() net.Addr
}
