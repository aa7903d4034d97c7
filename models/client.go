// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Client is the only entity persisted by the registry: one row of the
// "clients" table.
type Client struct {
	// ID is the primary key. Zero means "not assigned yet": the store picks
	// the next auto-increment value on insert. A non-zero ID on insert turns
	// the insert into an upsert (full replace of the existing row).
	ID int64 `json:"id"`

	// Name is the display name. Lists are ordered by it.
	Name string `json:"name"`

	// Email is the contact address. Only checked for being non-blank, and
	// only on the user-facing path.
	Email string `json:"email"`

	// ExternalRef is a free-form secondary identifier, e.g. a legacy ID or
	// the remote username of an imported user.
	ExternalRef string `json:"external_ref"`
}

// TableName returns the name of the database table
// associated with the Client model.
func (c Client) TableName() string {
	return "clients"
}

// HasID reports whether the store already assigned (or the caller supplied)
// a primary key.
func (c Client) HasID() bool {
	return c.ID != 0
}
