// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/client-registry/internal/workers"
)

// Executor runs jobs off the caller's goroutine. *workers.Pool implements it.
type Executor interface {
	Submit(ctx context.Context, name string, fn func(ctx context.Context) error) *workers.Task
}

// remoteSyncer is the part of [ClientRegistry] the sync job needs.
type remoteSyncer interface {
	SyncRemote(ctx context.Context) *workers.Task
}
