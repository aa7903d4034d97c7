// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/client-registry/models"
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func TestBuildListClientsQuery(t *testing.T) {
	query, args, err := buildListClientsQuery(sqliteBuilder)
	require.NoError(t, err)
	assert.Empty(t, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select id, name, email, external_ref from clients")
	assert.Contains(t, q, "order by lower(name) asc, name asc, id asc")
}

func TestBuildGetClientQuery(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{name: "sqlite", builder: sqliteBuilder, placeholder: "id = ?"},
		{name: "postgres", builder: postgresBuilder, placeholder: "id = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetClientQuery(tt.builder, 42)
			require.NoError(t, err)
			assert.Contains(t, query, tt.placeholder)
			assert.Equal(t, []any{int64(42)}, args)
		})
	}
}

func TestBuildInsertClientQuery(t *testing.T) {
	t.Run("without id the database assigns one", func(t *testing.T) {
		query, args, err := buildInsertClientQuery(sqliteBuilder, models.Client{Name: "Ana", Email: "ana@email.com", ExternalRef: "004"})
		require.NoError(t, err)

		q := strings.ToLower(query)
		assert.Contains(t, q, "insert into clients (name,email,external_ref) values (?,?,?)")
		assert.Contains(t, q, "returning id")
		assert.NotContains(t, q, "on conflict")
		assert.Equal(t, []any{"Ana", "ana@email.com", "004"}, args)
	})

	t.Run("with id the row is replaced", func(t *testing.T) {
		query, args, err := buildInsertClientQuery(postgresBuilder, models.Client{ID: 7, Name: "A", Email: "a@x.com", ExternalRef: "u1"})
		require.NoError(t, err)

		q := strings.ToLower(query)
		assert.Contains(t, q, "insert into clients (id,name,email,external_ref) values ($1,$2,$3,$4)")
		assert.Contains(t, q, "on conflict (id) do update set")
		assert.Contains(t, q, "external_ref = excluded.external_ref")
		assert.Contains(t, q, "returning id")
		assert.Equal(t, []any{int64(7), "A", "a@x.com", "u1"}, args)
	})
}

func TestBuildUpdateClientQuery(t *testing.T) {
	query, args, err := buildUpdateClientQuery(postgresBuilder, models.Client{ID: 3, Name: "N", Email: "e", ExternalRef: "r"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "update clients set name = $1, email = $2, external_ref = $3 where id = $4")
	assert.Equal(t, []any{"N", "e", "r", int64(3)}, args)
}

func TestBuildDeleteQueries(t *testing.T) {
	query, args, err := buildDeleteClientQuery(sqliteBuilder, 9)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM clients WHERE id = ?", query)
	assert.Equal(t, []any{int64(9)}, args)

	query, args, err = buildDeleteAllClientsQuery(sqliteBuilder)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM clients", query)
	assert.Empty(t, args)
}
