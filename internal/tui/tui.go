// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive client list: a bubbletea program over
// [service.ClientRegistry] that renders the live list and drives every
// registry operation from the keyboard.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/service"
	"github.com/MKhiriev/client-registry/internal/validators"
	"github.com/MKhiriev/client-registry/models"
)

type TUI struct {
	registry  service.ClientRegistry
	validator validators.Validator
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(registry service.ClientRegistry, validator validators.Validator, buildInfo models.BuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		registry:  registry,
		validator: validator,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is not
// an error.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newAppModel(ctx, t.registry, t.validator, t.buildInfo, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
