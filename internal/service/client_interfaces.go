// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client registry: the operation set the UI and
// the CLI call, composed from the local store and the remote adapter.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/workers"
	"github.com/MKhiriev/client-registry/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientRegistry is the stable operation set over the client list.
//
// Every mutating call is queued on the worker pool and returns at once. The
// returned task reports the outcome; callers that do not care may drop it.
// Failures are logged here either way.
type ClientRegistry interface {
	// ObserveAll subscribes to the live, name-ordered client list.
	ObserveAll(ctx context.Context) *store.Subscription

	// Add inserts client. A zero ID gets a fresh id; a non-zero ID replaces
	// the row with that id.
	Add(ctx context.Context, client models.Client) *workers.Task

	// Edit replaces all fields of the row with client.ID. Editing a missing
	// id changes nothing.
	Edit(ctx context.Context, client models.Client) *workers.Task

	// Remove deletes the row with client.ID. Removing a missing id is a
	// no-op.
	Remove(ctx context.Context, client models.Client) *workers.Task

	// RemoveAll empties the list.
	RemoveAll(ctx context.Context) *workers.Task

	// SeedSampleData appends the 20 built-in sample clients. Calling it
	// twice appends them twice.
	SeedSampleData(ctx context.Context) *workers.Task

	// SyncRemote imports the remote users. If the fetch fails nothing is
	// written and the task reports the error.
	SyncRemote(ctx context.Context) *workers.Task
}

// ClientSyncService performs one remote import synchronously.
type ClientSyncService interface {
	Sync(ctx context.Context) (models.SyncReport, error)
}

// ClientSyncJob triggers SyncRemote periodically.
type ClientSyncJob interface {
	// Run implements [workers.Worker]: it syncs on the configured interval
	// until ctx ends. A zero interval disables the job.
	Run(ctx context.Context) error

	// Start launches the ticker with interval, replacing a running one.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the ticker and waits for it to exit.
	Stop()
}
