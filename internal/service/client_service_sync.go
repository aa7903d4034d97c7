// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/client-registry/internal/adapter"
	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/utils"
	"github.com/MKhiriev/client-registry/internal/validators"
	"github.com/MKhiriev/client-registry/models"
)

type clientSyncService struct {
	clients   store.ClientRepository
	remote    adapter.RemoteAdapter
	validator validators.Validator
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewClientSyncService imports remote users into clients.
func NewClientSyncService(clients store.ClientRepository, remote adapter.RemoteAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		clients:   clients,
		remote:    remote,
		validator: validators.NewClientValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Sync fetches all remote users and upserts each one by its remote id.
//
// The whole list is fetched before anything is written, so a failed fetch
// leaves the store untouched. A failed write stops the import; rows written
// before it stay. Users without a positive id are skipped. The report
// counts what was fetched, written and skipped.
func (s *clientSyncService) Sync(ctx context.Context) (models.SyncReport, error) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = s.ids.Generate()
		ctx = utils.WithTraceID(ctx, traceID)
	}
	log := logger.FromContextOr(ctx, s.logger)

	report := models.SyncReport{Started: time.Now()}

	users, err := s.remote.FetchUsers(ctx)
	if err != nil {
		report.Duration = time.Since(report.Started)
		log.Warn().Err(err).Str("func", "clientSyncService.Sync").Str("trace_id", traceID).Msg("fetching remote users failed, sync abandoned")
		return report, fmt.Errorf("%w: fetch users: %w", ErrSyncFailed, err)
	}
	report.Fetched = len(users)

	for _, user := range users {
		// without a remote id the insert would append a new row on every sync
		if err = s.validator.Validate(ctx, user, validators.FieldID); err != nil {
			log.Warn().Err(err).Str("func", "clientSyncService.Sync").Str("trace_id", traceID).Str("username", user.Username).Msg("remote user has no id, skipped")
			report.Skipped++
			continue
		}

		client := user.ToClient()
		if _, err = s.clients.Insert(ctx, client); err != nil {
			report.Duration = time.Since(report.Started)
			log.Err(err).Str("func", "clientSyncService.Sync").Str("trace_id", traceID).Int64("client_id", client.ID).Msg("importing remote user failed")
			return report, fmt.Errorf("%w: import user %d: %w", ErrSyncFailed, client.ID, err)
		}
		report.Imported++
	}

	report.Duration = time.Since(report.Started)
	log.Info().
		Str("func", "clientSyncService.Sync").
		Str("trace_id", traceID).
		Int("fetched", report.Fetched).
		Int("imported", report.Imported).
		Int("skipped", report.Skipped).
		Dur("duration", report.Duration).
		Msg("remote sync finished")

	return report, nil
}
