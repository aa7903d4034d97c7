// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote users API (jsonplaceholder or the
// bundled placeholder server).
//
// Transport failures and non-2xx statuses are reported as [ErrNetwork] with
// a status sentinel such as [ErrNotFound] wrapped alongside; bodies that do
// not decode are reported as [ErrDecode]. Callers match them with
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/client-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter is the remote users API. Sync only uses FetchUsers; the
// other calls cover the rest of the /users resource.
type RemoteAdapter interface {
	// FetchUsers performs GET /users and returns the whole array.
	FetchUsers(ctx context.Context) ([]models.RemoteUser, error)

	// FetchUser performs GET /users/{id}.
	FetchUser(ctx context.Context, id int64) (models.RemoteUser, error)

	// CreateUser performs POST /users and returns the user as the API
	// echoed it back, with its assigned id.
	CreateUser(ctx context.Context, user models.RemoteUser) (models.RemoteUser, error)

	// UpdateUser performs PUT /users/{user.ID}.
	UpdateUser(ctx context.Context, user models.RemoteUser) (models.RemoteUser, error)

	// DeleteUser performs DELETE /users/{id}.
	DeleteUser(ctx context.Context, id int64) error
}
