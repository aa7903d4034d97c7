// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/client-registry/internal/config"
	"github.com/MKhiriev/client-registry/internal/handler"
	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/server"
	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/validators"
	"github.com/MKhiriev/client-registry/internal/workers"
	"github.com/MKhiriev/client-registry/models"
)

// RunPlaceholder serves the placeholder users API on cfg.Placeholder.Address
// until ctx is cancelled. It needs no local storage.
func RunPlaceholder(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.BuildInfo, logger *logger.Logger) error {
	handlers, err := handler.NewHandlers(store.NewUserDirectory(nil), validators.NewClientValidator(), buildInfo, cfg.Placeholder, logger)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Placeholder, logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	return workers.NewWorkers(srv).Run(ctx)
}
