// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/client-registry/internal/adapter"
	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/workers"
	"github.com/MKhiriev/client-registry/models"
)

func sampleRows(n int) []models.Client {
	clients := make([]models.Client, 0, n)
	for i := 0; i < n; i++ {
		clients = append(clients, models.Client{
			ID:          int64(i + 1),
			Name:        fmt.Sprintf("Client %02d", i+1),
			Email:       fmt.Sprintf("client%02d@email.com", i+1),
			ExternalRef: fmt.Sprintf("%03d", i+1),
		})
	}
	return clients
}

func TestFitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "short", max: 10, want: "short"},
		{in: "exactly10!", max: 10, want: "exactly10!"},
		{in: "Nicholas Runolfsdottir V", max: 10, want: "Nichola..."},
		{in: "Vanessa Araújo", max: 9, want: "Vaness..."},
		{in: "Araújo", max: 6, want: "Araújo"},
		{in: "abcdef", max: 3, want: "abc"},
		{in: "abc", max: 0, want: "abc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fitText(tt.in, tt.max), tt.in)
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "João  ", padRight("João", 6))
	assert.Equal(t, "toolong", padRight("toolong", 3))
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name               string
		idx, total, height int
		wantFrom, wantTo   int
	}{
		{name: "fits", idx: 2, total: 5, height: 10, wantFrom: 0, wantTo: 5},
		{name: "no height", idx: 2, total: 50, height: 0, wantFrom: 0, wantTo: 50},
		{name: "top", idx: 0, total: 40, height: 10, wantFrom: 0, wantTo: 10},
		{name: "middle", idx: 20, total: 40, height: 10, wantFrom: 15, wantTo: 25},
		{name: "bottom", idx: 39, total: 40, height: 10, wantFrom: 30, wantTo: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := visibleRange(tt.idx, tt.total, tt.height)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
			assert.True(t, tt.idx >= from && tt.idx < to)
		})
	}
}

func TestListView_ScrollsLongLists(t *testing.T) {
	list := newListModel()
	list.height = 5
	list.setClients(sampleRows(40))
	list.idx = 39

	view := list.View()
	assert.Contains(t, view, "Clients (40)")
	assert.Contains(t, view, "36-40 of 40")
	assert.Contains(t, view, "Client 39")
	assert.NotContains(t, view, "Client 01 ")
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "decode", err: fmt.Errorf("%w: %w: unexpected end of JSON input", adapter.ErrNetwork, adapter.ErrDecode), want: "Remote API returned an unexpected response"},
		{name: "connection refused", err: fmt.Errorf("%w: dial tcp 127.0.0.1:1: connect: connection refused", adapter.ErrNetwork), want: "No network or remote API unavailable"},
		{name: "timeout", err: fmt.Errorf("%w: context deadline exceeded", adapter.ErrNetwork), want: "No network or remote API unavailable"},
		{name: "status", err: fmt.Errorf("%w: %w: oops", adapter.ErrNetwork, adapter.ErrInternalServerError), want: "Remote API error: network error: internal server error: oops"},
		{name: "store", err: fmt.Errorf("%w: locked", store.ErrStore), want: "Local storage error: " + store.ErrStore.Error() + ": locked"},
		{name: "pool closed", err: workers.ErrPoolClosed, want: "Shutting down, operation was not run"},
		{name: "canceled", err: context.Canceled, want: "Shutting down, operation was not run"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
