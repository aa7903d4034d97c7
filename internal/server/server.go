// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"github.com/MKhiriev/client-registry/internal/config"
	"github.com/MKhiriev/client-registry/internal/handler"
	"github.com/MKhiriev/client-registry/internal/logger"
)

// NewServer builds the placeholder HTTP server on cfg.Address.
func NewServer(handlers *handler.Handlers, cfg config.Placeholder, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.Address == "" {
		return nil, errNoServersAreCreated
	}

	return newHTTPServer(handlers.HTTP.Init(), cfg.Address, logger), nil
}
