// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/client-registry/models"
)

func TestSortClients(t *testing.T) {
	tests := []struct {
		name    string
		clients []models.Client
		want    []int64
	}{
		{
			name: "case and accents are folded",
			clients: []models.Client{
				{ID: 1, Name: "Vanessa Araújo"},
				{ID: 2, Name: "ângela"},
				{ID: 3, Name: "João Silva"},
				{ID: 4, Name: "Joana Dias"},
			},
			want: []int64{2, 4, 3, 1},
		},
		{
			name: "same name differing in case is ordered by exact name",
			clients: []models.Client{
				{ID: 1, Name: "ana"},
				{ID: 2, Name: "Ana"},
			},
			want: []int64{2, 1},
		},
		{
			name: "identical names are ordered by id",
			clients: []models.Client{
				{ID: 9, Name: "Maria Santos"},
				{ID: 3, Name: "Maria Santos"},
			},
			want: []int64{3, 9},
		},
		{
			name: "empty",
			want: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sortClients(tt.clients)

			ids := make([]int64, 0, len(tt.clients))
			for _, c := range tt.clients {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
