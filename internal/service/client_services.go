// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/client-registry/internal/adapter"
	"github.com/MKhiriev/client-registry/internal/config"
	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/store"
)

// ClientServices is the wired service layer.
type ClientServices struct {
	Registry    ClientRegistry
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

// NewClientServices wires the registry over storages and remote. Mutations
// run on executor; cfg.SyncInterval configures SyncJob.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteAdapter, executor Executor, cfg config.Workers, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(storages.Clients, remote, logger)
	registry := NewClientRegistry(storages.Clients, syncSvc, executor, logger)

	return &ClientServices{
		Registry:    registry,
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(registry, cfg.SyncInterval, logger),
	}
}
