// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/client-registry/internal/adapter"
	"github.com/MKhiriev/client-registry/internal/config"
	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/service"
	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/tui"
	"github.com/MKhiriev/client-registry/internal/validators"
	"github.com/MKhiriev/client-registry/internal/workers"
	"github.com/MKhiriev/client-registry/models"
)

var _ Client = (*App)(nil)

// App runs a single command. Its worker pool cannot be restarted, so a
// second command on the same App fails with workers.ErrPoolClosed.
type App struct {
	buildInfo models.BuildInfo
	logger    *logger.Logger

	storages *store.ClientStorages
	pool     *workers.Pool
	services *service.ClientServices
}

// NewApp opens the local store (running migrations), builds the remote
// adapter and wires the services. The caller must Close the app.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.BuildInfo, logger *logger.Logger) (*App, error) {
	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	pool := workers.NewPool(cfg.Workers.PoolSize, cfg.Workers.QueueSize, logger)

	return &App{
		buildInfo: buildInfo,
		logger:    logger,
		storages:  storages,
		pool:      pool,
		services:  service.NewClientServices(storages, remote, pool, cfg.Workers, logger),
	}, nil
}

func (a *App) RunTUI(ctx context.Context) error {
	ui := tui.New(a.services.Registry, validators.NewClientValidator(), a.buildInfo, a.logger)
	return a.run(ctx, a.services.SyncJob, ui.Run)
}

func (a *App) List(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sub := a.services.Registry.ObserveAll(ctx)
	defer sub.Close()

	var clients []models.Client
	select {
	case snapshot, ok := <-sub.Updates():
		if !ok {
			return fmt.Errorf("list clients: %w", sub.Err())
		}
		clients = snapshot
	case <-ctx.Done():
		return ctx.Err()
	}

	if len(clients) == 0 {
		_, err := fmt.Fprintln(w, "No clients.")
		return err
	}

	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Name, c.Email, c.ExternalRef})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "EMAIL", "IDENTIFICATION").
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n%d clients\n", t.Render(), len(clients))
	return err
}

func (a *App) Seed(ctx context.Context, w io.Writer) error {
	err := a.run(ctx, nil, func(ctx context.Context) error {
		return a.services.Registry.SeedSampleData(ctx).Wait(ctx)
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Added %d sample clients.\n", len(service.SampleClients()))
	return err
}

func (a *App) Sync(ctx context.Context, w io.Writer) error {
	err := a.run(ctx, nil, func(ctx context.Context) error {
		return a.services.Registry.SyncRemote(ctx).Wait(ctx)
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, "Remote users imported.")
	return err
}

func (a *App) Clear(ctx context.Context, w io.Writer) error {
	err := a.run(ctx, nil, func(ctx context.Context) error {
		return a.services.Registry.RemoveAll(ctx).Wait(ctx)
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, "All clients deleted.")
	return err
}

func (a *App) Close() error {
	return a.storages.Close()
}

// run executes fn while the worker pool, and job when non-nil, run in the
// background. Background workers stop once fn returns.
func (a *App) run(ctx context.Context, job workers.Worker, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bg := workers.NewWorkers(a.pool)
	if job != nil {
		bg.Add(job)
	}

	bgErr := make(chan error, 1)
	go func() {
		bgErr <- bg.Run(ctx)
	}()

	err := fn(ctx)
	cancel()

	return errors.Join(err, <-bgErr)
}
