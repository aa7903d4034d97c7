// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteUser is the shape returned by the placeholder REST API under /users.
// It only lives for the duration of a sync call.
type RemoteUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// ToClient maps the remote user 1:1 onto a local client record. The remote
// id is kept, so importing the same user twice replaces the row instead of
// appending a new one.
func (u RemoteUser) ToClient() Client {
	return Client{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		ExternalRef: u.Username,
	}
}
