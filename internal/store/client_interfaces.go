// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/client-registry/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ClientRepository is the low-level CRUD surface over the clients table.
type ClientRepository interface {
	// List returns every client ordered by name.
	List(ctx context.Context) ([]models.Client, error)
	// Get returns the client with the given id or ErrClientNotFound.
	Get(ctx context.Context, id int64) (models.Client, error)
	// Insert stores client and returns its row id. A zero ID lets the store
	// assign one; a non-zero ID replaces any existing row with that id.
	Insert(ctx context.Context, client models.Client) (int64, error)
	// Update replaces the row with client.ID and returns the rows affected.
	Update(ctx context.Context, client models.Client) (int64, error)
	// Delete removes the row with client.ID and returns the rows affected.
	Delete(ctx context.Context, client models.Client) (int64, error)
	// DeleteAll empties the table and returns the rows affected.
	DeleteAll(ctx context.Context) (int64, error)
}

// LocalClientStore is a [ClientRepository] that also publishes the ordered
// client list to any number of subscribers.
type LocalClientStore interface {
	ClientRepository
	// Watch subscribes to the live client list. The subscription ends when
	// ctx is cancelled or Close is called.
	Watch(ctx context.Context) *Subscription
}
