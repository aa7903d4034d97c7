// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
)

// Client is the command surface of the application. Every method blocks
// until its work is done or ctx is cancelled.
type Client interface {
	// RunTUI runs the interactive list until the user quits.
	RunTUI(ctx context.Context) error

	// List prints the current client list to w.
	List(ctx context.Context, w io.Writer) error

	// Seed appends the sample clients.
	Seed(ctx context.Context, w io.Writer) error

	// Sync imports the remote users once.
	Sync(ctx context.Context, w io.Writer) error

	// Clear deletes every client.
	Clear(ctx context.Context, w io.Writer) error

	// Close releases storage.
	Close() error
}
