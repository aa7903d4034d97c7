// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/utils"
	"github.com/MKhiriev/client-registry/internal/validators"
	"github.com/MKhiriev/client-registry/models"
)

type Handler struct {
	users     store.UserDirectory
	validator validators.Validator
	buildInfo models.BuildInfo
	traceIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(users store.UserDirectory, validator validators.Validator, buildInfo models.BuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		users:     users,
		validator: validator,
		buildInfo: buildInfo,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
