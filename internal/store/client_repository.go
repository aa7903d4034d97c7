// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/models"
)

// clientRepository is the database/sql implementation of [ClientRepository].
// It works with both SQLite and PostgreSQL; the dialect only changes the
// placeholder format and the id sequence handling.
type clientRepository struct {
	*DB
	logger *logger.Logger
}

// NewClientRepository constructs a [ClientRepository] backed by db.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	return &clientRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *clientRepository) List(ctx context.Context) ([]models.Client, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildListClientsQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "clientRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.List").Msg("failed to execute query for listing clients")
		return nil, fmt.Errorf("%w: %w: %w", ErrStore, ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0, 32)
	for rows.Next() {
		var client models.Client
		if err = rows.Scan(&client.ID, &client.Name, &client.Email, &client.ExternalRef); err != nil {
			log.Err(err).Str("func", "clientRepository.List").Msg("failed to scan client row")
			return nil, fmt.Errorf("%w: %w: %w", ErrStore, ErrScanningRow, err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "clientRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w: %w", ErrStore, ErrScanningRows, err)
	}

	sortClients(clients)
	return clients, nil
}

func (r *clientRepository) Get(ctx context.Context, id int64) (models.Client, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildGetClientQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.Get").Int64("client_id", id).Msg("failed to create query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	var client models.Client
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&client.ID, &client.Name, &client.Email, &client.ExternalRef)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, ErrClientNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "clientRepository.Get").Int64("client_id", id).Msg("failed to get client")
		return models.Client{}, fmt.Errorf("%w: %w: %w", ErrStore, ErrExecutingQuery, err)
	}

	return client, nil
}

func (r *clientRepository) Insert(ctx context.Context, client models.Client) (int64, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildInsertClientQuery(r.builder(), client)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.Insert").Int64("client_id", client.ID).Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}

	var id int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		log.Err(err).Str("func", "clientRepository.Insert").Int64("client_id", client.ID).Msg("failed to insert client")
		return 0, fmt.Errorf("%w: %w: %w", ErrStore, ErrExecutingQuery, err)
	}

	if client.HasID() && r.isPostgres() {
		if _, err = r.DB.ExecContext(ctx, syncClientsSequence); err != nil {
			log.Err(err).Str("func", "clientRepository.Insert").Int64("client_id", id).Msg("failed to move clients id sequence")
			return 0, fmt.Errorf("%w: %w: %w", ErrStore, ErrExecutingQuery, err)
		}
	}

	log.Debug().Str("func", "clientRepository.Insert").Int64("client_id", id).Msg("client saved")
	return id, nil
}

func (r *clientRepository) Update(ctx context.Context, client models.Client) (int64, error) {
	query, args, err := buildUpdateClientQuery(r.builder(), client)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return r.exec(ctx, "clientRepository.Update", client.ID, query, args)
}

func (r *clientRepository) Delete(ctx context.Context, client models.Client) (int64, error) {
	query, args, err := buildDeleteClientQuery(r.builder(), client.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return r.exec(ctx, "clientRepository.Delete", client.ID, query, args)
}

func (r *clientRepository) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := buildDeleteAllClientsQuery(r.builder())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return r.exec(ctx, "clientRepository.DeleteAll", 0, query, args)
}

// exec runs a write statement with retries and returns the rows affected.
func (r *clientRepository) exec(ctx context.Context, fn string, clientID int64, query string, args []any) (int64, error) {
	log := logger.FromContextOr(ctx, r.logger)

	var affected int64
	err := r.withRetry(ctx, func(ctx context.Context) error {
		result, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", fn).Int64("client_id", clientID).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w: %w", ErrStore, ErrExecutingQuery, err)
	}

	log.Debug().Str("func", fn).Int64("client_id", clientID).Int64("rows_affected", affected).Msg("statement executed")
	return affected, nil
}
