// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the placeholder server.
package handler

import (
	"github.com/MKhiriev/client-registry/internal/config"
	"github.com/MKhiriev/client-registry/internal/handler/http"
	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/validators"
	"github.com/MKhiriev/client-registry/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(users store.UserDirectory, validator validators.Validator, buildInfo models.BuildInfo, cfg config.Placeholder, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(users, validator, buildInfo, logger),
	}, nil
}
