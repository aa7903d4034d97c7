// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/client-registry/models"
)

func TestUserDirectory_DefaultUsers(t *testing.T) {
	d := NewUserDirectory(nil)

	users, err := d.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 10)
	assert.Equal(t, models.RemoteUser{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"}, users[0])
	assert.Equal(t, int64(10), users[9].ID)
}

func TestUserDirectory_CRUD(t *testing.T) {
	ctx := context.Background()
	d := NewUserDirectory([]models.RemoteUser{{ID: 1, Name: "A", Email: "a@x.com", Username: "u1"}})

	created, err := d.Create(ctx, models.RemoteUser{ID: 100, Name: "B", Email: "b@x.com", Username: "u2"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID, "ids are assigned by the directory")

	got, err := d.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	replaced, err := d.Replace(ctx, models.RemoteUser{ID: 2, Name: "B2", Email: "b2@x.com", Username: "u2"})
	require.NoError(t, err)
	assert.Equal(t, "B2", replaced.Name)

	require.NoError(t, d.Delete(ctx, 2))
	_, err = d.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserDirectory_MissingUser(t *testing.T) {
	ctx := context.Background()
	d := NewUserDirectory([]models.RemoteUser{})

	_, err := d.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = d.Replace(ctx, models.RemoteUser{ID: 1})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, d.Delete(ctx, 1), ErrUserNotFound)

	users, err := d.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
