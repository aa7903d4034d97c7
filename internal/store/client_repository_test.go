// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/migrations"
	"github.com/MKhiriev/client-registry/models"
)

const selectClientsSQL = `SELECT id, name, email, external_ref FROM clients`

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newSQLiteRepo(db *sql.DB) ClientRepository {
	return NewClientRepository(&DB{
		DB:                 db,
		dialect:            migrations.DialectSQLite,
		placeholder:        sq.Question,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}, logger.Nop())
}

func newPostgresRepo(db *sql.DB) ClientRepository {
	return NewClientRepository(&DB{
		DB:                 db,
		dialect:            migrations.DialectPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, logger.Nop())
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestClientRepository_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSQLiteRepo(db)

		rows := sqlmock.NewRows(clientColumns).
			AddRow(int64(2), "Ana Costa", "ana@email.com", "004").
			AddRow(int64(1), "João Silva", "joao@email.com", "001")
		mock.ExpectQuery(regexp.QuoteMeta(selectClientsSQL + ` ORDER BY LOWER(name) ASC, name ASC, id ASC`)).
			WillReturnRows(rows)

		clients, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []models.Client{
			{ID: 2, Name: "Ana Costa", Email: "ana@email.com", ExternalRef: "004"},
			{ID: 1, Name: "João Silva", Email: "joao@email.com", ExternalRef: "001"},
		}, clients)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table gives empty slice", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSQLiteRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(selectClientsSQL)).WillReturnRows(sqlmock.NewRows(clientColumns))

		clients, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, clients)
		assert.Empty(t, clients)
	})

	t.Run("query error is a store error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSQLiteRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(selectClientsSQL)).WillReturnError(errors.New("disk I/O error"))

		_, err := repo.List(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStore)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("row error is a store error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSQLiteRepo(db)

		rows := sqlmock.NewRows(clientColumns).
			AddRow(int64(1), "A", "a@x.com", "u1").
			RowError(0, errors.New("corrupt page"))
		mock.ExpectQuery(regexp.QuoteMeta(selectClientsSQL)).WillReturnRows(rows)

		_, err := repo.List(context.Background())
		assert.ErrorIs(t, err, ErrStore)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestClientRepository_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newPostgresRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(selectClientsSQL + ` WHERE id = $1`)).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(clientColumns).AddRow(int64(5), "Carlos Souza", "carlos@email.com", "005"))

		client, err := repo.Get(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, models.Client{ID: 5, Name: "Carlos Souza", Email: "carlos@email.com", ExternalRef: "005"}, client)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newPostgresRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(selectClientsSQL + ` WHERE id = $1`)).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(clientColumns))

		_, err := repo.Get(context.Background(), 404)
		assert.ErrorIs(t, err, ErrClientNotFound)
		assert.NotErrorIs(t, err, ErrStore)
	})
}

// ── Insert ───────────────────────────────────────────────────────────────────

func TestClientRepository_Insert(t *testing.T) {
	t.Run("auto id", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSQLiteRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO clients (name,email,external_ref) VALUES (?,?,?) RETURNING id`)).
			WithArgs("Ana", "ana@email.com", "004").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

		id, err := repo.Insert(context.Background(), models.Client{Name: "Ana", Email: "ana@email.com", ExternalRef: "004"})
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit id on sqlite upserts without touching sequences", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSQLiteRepo(db)

		mock.ExpectQuery(`INSERT INTO clients \(id,name,email,external_ref\) VALUES \(\?,\?,\?,\?\) ON CONFLICT \(id\) DO UPDATE SET`).
			WithArgs(int64(1), "A", "a@x.com", "u1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		id, err := repo.Insert(context.Background(), models.Client{ID: 1, Name: "A", Email: "a@x.com", ExternalRef: "u1"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit id on postgres moves the sequence", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newPostgresRepo(db)

		mock.ExpectQuery(`INSERT INTO clients \(id,name,email,external_ref\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT`).
			WithArgs(int64(3), "C", "c@x.com", "u3").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectExec(regexp.QuoteMeta(`SELECT setval(pg_get_serial_sequence('clients', 'id')`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := repo.Insert(context.Background(), models.Client{ID: 3, Name: "C", Email: "c@x.com", ExternalRef: "u3"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("busy database is retried", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSQLiteRepo(db)

		insert := regexp.QuoteMeta(`INSERT INTO clients (name,email,external_ref)`)
		mock.ExpectQuery(insert).WillReturnError(errors.New("database is locked"))
		mock.ExpectQuery(insert).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

		id, err := repo.Insert(context.Background(), models.Client{Name: "B", Email: "b", ExternalRef: "b"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non retryable error is returned at once", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSQLiteRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO clients`)).
			WillReturnError(errors.New("NOT NULL constraint failed: clients.name"))

		_, err := repo.Insert(context.Background(), models.Client{Email: "b", ExternalRef: "b"})
		assert.ErrorIs(t, err, ErrStore)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// ── Update / Delete ──────────────────────────────────────────────────────────

func TestClientRepository_Update(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSQLiteRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE clients SET name = ?, email = ?, external_ref = ? WHERE id = ?`)).
		WithArgs("New", "new@x.com", "n", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Update(context.Background(), models.Client{ID: 4, Name: "New", Email: "new@x.com", ExternalRef: "n"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestClientRepository_Delete(t *testing.T) {
	t.Run("missing id is a no-op", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSQLiteRepo(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id = ?`)).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.Delete(context.Background(), models.Client{ID: 99})
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newSQLiteRepo(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id = ?`)).
			WillReturnError(errors.New("disk full"))

		_, err := repo.Delete(context.Background(), models.Client{ID: 1})
		assert.ErrorIs(t, err, ErrStore)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestClientRepository_DeleteAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newSQLiteRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients`)).
		WillReturnResult(sqlmock.NewResult(0, 20))

	affected, err := repo.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(20), affected)
}
