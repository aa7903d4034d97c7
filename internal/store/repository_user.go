// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/client-registry/models"
)

// userDirectory is an in-memory [UserDirectory]. It starts with the ten
// users jsonplaceholder.typicode.com serves, so the placeholder server can
// stand in for the public API.
type userDirectory struct {
	mu     sync.RWMutex
	users  map[int64]models.RemoteUser
	nextID int64
}

// NewUserDirectory returns a directory holding users. A nil slice seeds it
// with [DefaultRemoteUsers].
func NewUserDirectory(users []models.RemoteUser) UserDirectory {
	if users == nil {
		users = DefaultRemoteUsers()
	}

	d := &userDirectory{
		users:  make(map[int64]models.RemoteUser, len(users)),
		nextID: 1,
	}
	for _, u := range users {
		d.users[u.ID] = u
		if u.ID >= d.nextID {
			d.nextID = u.ID + 1
		}
	}
	return d
}

func (d *userDirectory) List(_ context.Context) ([]models.RemoteUser, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]models.RemoteUser, 0, len(d.users))
	for _, u := range d.users {
		users = append(users, u)
	}
	slices.SortFunc(users, func(a, b models.RemoteUser) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return users, nil
}

func (d *userDirectory) Get(_ context.Context, id int64) (models.RemoteUser, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return models.RemoteUser{}, ErrUserNotFound
	}
	return u, nil
}

func (d *userDirectory) Create(_ context.Context, user models.RemoteUser) (models.RemoteUser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user.ID = d.nextID
	d.nextID++
	d.users[user.ID] = user
	return user, nil
}

func (d *userDirectory) Replace(_ context.Context, user models.RemoteUser) (models.RemoteUser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[user.ID]; !ok {
		return models.RemoteUser{}, ErrUserNotFound
	}
	d.users[user.ID] = user
	return user, nil
}

func (d *userDirectory) Delete(_ context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(d.users, id)
	return nil
}

// DefaultRemoteUsers returns the users of the public placeholder API.
func DefaultRemoteUsers() []models.RemoteUser {
	return []models.RemoteUser{
		{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"},
		{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv"},
		{ID: 3, Name: "Clementine Bauch", Username: "Samantha", Email: "Nathan@yesenia.net"},
		{ID: 4, Name: "Patricia Lebsack", Username: "Karianne", Email: "Julianne.OConner@kory.org"},
		{ID: 5, Name: "Chelsey Dietrich", Username: "Kamren", Email: "Lucio_Hettinger@annie.ca"},
		{ID: 6, Name: "Mrs. Dennis Schulist", Username: "Leopoldo_Corkery", Email: "Karley_Dach@jasper.info"},
		{ID: 7, Name: "Kurtis Weissnat", Username: "Elwyn.Skiles", Email: "Telly.Hoeger@billy.biz"},
		{ID: 8, Name: "Nicholas Runolfsdottir V", Username: "Maxime_Nienow", Email: "Sherwood@rosamond.me"},
		{ID: 9, Name: "Glenna Reichert", Username: "Delphine", Email: "Chaim_McDermott@dana.io"},
		{ID: 10, Name: "Clementina DuBuque", Username: "Moriah.Stanton", Email: "Rey.Padberg@karina.biz"},
	}
}
