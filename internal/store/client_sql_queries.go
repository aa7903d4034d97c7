// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/client-registry/models"
)

const clientsTable = "clients"

var clientColumns = []string{"id", "name", "email", "external_ref"}

const (
	upsertClientSuffix = `ON CONFLICT (id) DO UPDATE SET
		name = excluded.name,
		email = excluded.email,
		external_ref = excluded.external_ref
		RETURNING id`

	// Explicit ids bypass the postgres sequence; move it past MAX(id) so the
	// next generated id does not collide.
	syncClientsSequence = `SELECT setval(pg_get_serial_sequence('clients', 'id'), GREATEST((SELECT MAX(id) FROM clients), 1))`
)

// buildListClientsQuery selects every client ordered case-insensitively by
// name. Ties are broken by the exact name and then by id so the order is
// total. The order is final only for ASCII names; List re-sorts with
// sortClients.
func buildListClientsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(clientColumns...).
		From(clientsTable).
		OrderBy("LOWER(name) ASC", "name ASC", "id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetClientQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(clientColumns...).
		From(clientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertClientQuery returns an INSERT ... RETURNING id statement. A
// zero id lets the database assign the key; a non-zero id replaces the
// existing row with that key.
func buildInsertClientQuery(b sq.StatementBuilderType, client models.Client) (string, []any, error) {
	var insert sq.InsertBuilder
	if client.HasID() {
		insert = b.Insert(clientsTable).
			Columns(clientColumns...).
			Values(client.ID, client.Name, client.Email, client.ExternalRef).
			Suffix(upsertClientSuffix)
	} else {
		insert = b.Insert(clientsTable).
			Columns("name", "email", "external_ref").
			Values(client.Name, client.Email, client.ExternalRef).
			Suffix("RETURNING id")
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateClientQuery(b sq.StatementBuilderType, client models.Client) (string, []any, error) {
	query, args, err := b.Update(clientsTable).
		Set("name", client.Name).
		Set("email", client.Email).
		Set("external_ref", client.ExternalRef).
		Where(sq.Eq{"id": client.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteClientQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Delete(clientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteAllClientsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Delete(clientsTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
