// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MKhiriev/client-registry/models"
)

// sortClients orders clients by name using Unicode collation with case
// ignored, then by exact name, then by id. SQLite's LOWER folds ASCII only,
// so the database order is not trusted for non-ASCII names and both
// backends end up with the same order.
func sortClients(clients []models.Client) {
	// a Collator is not safe for concurrent use
	col := collate.New(language.Und, collate.IgnoreCase)

	slices.SortStableFunc(clients, func(a, b models.Client) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
