// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/client-registry/internal/config"
	"github.com/MKhiriev/client-registry/internal/logger"
)

// ClientStorages groups the storage the registry works with and owns the
// underlying database connection.
type ClientStorages struct {
	// Clients is the live client table.
	Clients LocalClientStore

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. opens the database selected by cfg.Driver (SQLite file or in-memory
//     database, or PostgreSQL),
//  2. runs pending schema migrations,
//  3. wires a [LocalClientStore] over the clients table.
func NewClientStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite3, config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, logger)
	case config.DriverPgx:
		db, err = NewConnectPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStore, err)
	}

	return &ClientStorages{
		Clients: NewLocalClientStore(NewClientRepository(db, logger), logger),
		db:      db,
	}, nil
}

// Close ends every live subscription and closes the database.
func (s *ClientStorages) Close() error {
	if live, ok := s.Clients.(*liveClientStore); ok {
		live.close()
	}
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
