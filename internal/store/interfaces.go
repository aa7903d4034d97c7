// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/client-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_directory_mock.go -package=mock

// UserDirectory is the data source of the placeholder users API.
type UserDirectory interface {
	List(ctx context.Context) ([]models.RemoteUser, error)
	Get(ctx context.Context, id int64) (models.RemoteUser, error)
	// Create stores user under a new id and returns it.
	Create(ctx context.Context, user models.RemoteUser) (models.RemoteUser, error)
	// Replace overwrites the user with user.ID.
	Replace(ctx context.Context, user models.RemoteUser) (models.RemoteUser, error)
	Delete(ctx context.Context, id int64) error
}
