// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/workers"
	"github.com/MKhiriev/client-registry/models"
)

// Task names reported by [workers.Task.Name].
const (
	TaskAdd       = "add"
	TaskEdit      = "edit"
	TaskRemove    = "remove"
	TaskRemoveAll = "remove_all"
	TaskSeed      = "seed"
	TaskSync      = "sync"
)

type clientRegistry struct {
	clients  store.LocalClientStore
	sync     ClientSyncService
	executor Executor
	logger   *logger.Logger
}

// NewClientRegistry composes the registry. All mutations run on executor.
func NewClientRegistry(clients store.LocalClientStore, sync ClientSyncService, executor Executor, logger *logger.Logger) ClientRegistry {
	return &clientRegistry{
		clients:  clients,
		sync:     sync,
		executor: executor,
		logger:   logger,
	}
}

func (r *clientRegistry) ObserveAll(ctx context.Context) *store.Subscription {
	return r.clients.Watch(ctx)
}

func (r *clientRegistry) Add(ctx context.Context, client models.Client) *workers.Task {
	return r.submit(ctx, TaskAdd, client.ID, func(ctx context.Context) error {
		_, err := r.clients.Insert(ctx, client)
		return err
	})
}

func (r *clientRegistry) Edit(ctx context.Context, client models.Client) *workers.Task {
	return r.submit(ctx, TaskEdit, client.ID, func(ctx context.Context) error {
		affected, err := r.clients.Update(ctx, client)
		if err == nil && affected == 0 {
			r.log(ctx).Debug().Str("func", "clientRegistry.Edit").Int64("client_id", client.ID).Msg("no client with this id, nothing edited")
		}
		return err
	})
}

func (r *clientRegistry) Remove(ctx context.Context, client models.Client) *workers.Task {
	return r.submit(ctx, TaskRemove, client.ID, func(ctx context.Context) error {
		_, err := r.clients.Delete(ctx, client)
		return err
	})
}

func (r *clientRegistry) RemoveAll(ctx context.Context) *workers.Task {
	return r.submit(ctx, TaskRemoveAll, 0, func(ctx context.Context) error {
		_, err := r.clients.DeleteAll(ctx)
		return err
	})
}

func (r *clientRegistry) SeedSampleData(ctx context.Context) *workers.Task {
	return r.submit(ctx, TaskSeed, 0, func(ctx context.Context) error {
		samples := SampleClients()
		for i, client := range samples {
			if _, err := r.clients.Insert(ctx, client); err != nil {
				return fmt.Errorf("%w: inserted %d of %d: %w", ErrSeedFailed, i, len(samples), err)
			}
		}
		return nil
	})
}

func (r *clientRegistry) SyncRemote(ctx context.Context) *workers.Task {
	return r.submit(ctx, TaskSync, 0, func(ctx context.Context) error {
		_, err := r.sync.Sync(ctx)
		return err
	})
}

// submit queues fn and logs its failure. The error still reaches the task.
func (r *clientRegistry) submit(ctx context.Context, name string, clientID int64, fn func(ctx context.Context) error) *workers.Task {
	return r.executor.Submit(ctx, name, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil {
			r.log(ctx).Err(err).
				Str("func", "clientRegistry.submit").
				Str("task", name).
				Int64("client_id", clientID).
				Msg("registry operation failed")
		}
		return err
	})
}

func (r *clientRegistry) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, r.logger)
}
