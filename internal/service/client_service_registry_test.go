// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/client-registry/internal/adapter"
	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/mock"
	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/workers"
	"github.com/MKhiriev/client-registry/models"
)

// inlineExecutor выполняет задачу сразу, в вызывающей горутине.
type inlineExecutor struct {
	names []string
}

func (e *inlineExecutor) Submit(ctx context.Context, name string, fn func(ctx context.Context) error) *workers.Task {
	e.names = append(e.names, name)
	return workers.Completed(name, fn(ctx))
}

func newTestRegistry(t *testing.T) (ClientRegistry, *mock.MockLocalClientStore, *mock.MockClientSyncService, *inlineExecutor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	clients := mock.NewMockLocalClientStore(ctrl)
	syncSvc := mock.NewMockClientSyncService(ctrl)
	exec := &inlineExecutor{}
	return NewClientRegistry(clients, syncSvc, exec, logger.Nop()), clients, syncSvc, exec
}

// ── ObserveAll ───────────────────────────────────────────────────────────────

func TestClientRegistry_ObserveAll_DelegatesToWatch(t *testing.T) {
	registry, clients, _, exec := newTestRegistry(t)
	ctx := context.Background()

	clients.EXPECT().Watch(ctx).Return(nil)

	assert.Nil(t, registry.ObserveAll(ctx))
	assert.Empty(t, exec.names, "observing must not go through the executor")
}

// ── Add / Edit / Remove ──────────────────────────────────────────────────────

func TestClientRegistry_Add(t *testing.T) {
	registry, clients, _, exec := newTestRegistry(t)
	ctx := context.Background()
	client := models.Client{Name: "Ana Costa", Email: "ana@email.com", ExternalRef: "004"}

	clients.EXPECT().Insert(gomock.Any(), client).Return(int64(1), nil)

	task := registry.Add(ctx, client)
	require.NoError(t, task.Wait(ctx))
	assert.Equal(t, TaskAdd, task.Name())
	assert.Equal(t, []string{TaskAdd}, exec.names)
}

func TestClientRegistry_Add_StoreErrorReachesTask(t *testing.T) {
	registry, clients, _, _ := newTestRegistry(t)
	ctx := context.Background()
	storeErr := errors.Join(store.ErrStore, errors.New("disk full"))

	clients.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), storeErr)

	err := registry.Add(ctx, models.Client{Name: "x"}).Wait(ctx)
	assert.ErrorIs(t, err, store.ErrStore)
}

func TestClientRegistry_Edit(t *testing.T) {
	registry, clients, _, _ := newTestRegistry(t)
	ctx := context.Background()
	client := models.Client{ID: 3, Name: "New", Email: "new@x.com", ExternalRef: "n"}

	clients.EXPECT().Update(gomock.Any(), client).Return(int64(1), nil)

	assert.NoError(t, registry.Edit(ctx, client).Wait(ctx))
}

func TestClientRegistry_Edit_MissingIDIsNotAnError(t *testing.T) {
	registry, clients, _, _ := newTestRegistry(t)
	ctx := context.Background()

	clients.EXPECT().Update(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	assert.NoError(t, registry.Edit(ctx, models.Client{ID: 404}).Wait(ctx))
}

func TestClientRegistry_Remove(t *testing.T) {
	registry, clients, _, _ := newTestRegistry(t)
	ctx := context.Background()
	client := models.Client{ID: 9}

	clients.EXPECT().Delete(gomock.Any(), client).Return(int64(0), nil)

	assert.NoError(t, registry.Remove(ctx, client).Wait(ctx))
}

func TestClientRegistry_RemoveAll(t *testing.T) {
	registry, clients, _, exec := newTestRegistry(t)
	ctx := context.Background()

	clients.EXPECT().DeleteAll(gomock.Any()).Return(int64(20), nil)

	assert.NoError(t, registry.RemoveAll(ctx).Wait(ctx))
	assert.Equal(t, []string{TaskRemoveAll}, exec.names)
}

// ── SeedSampleData ───────────────────────────────────────────────────────────

func TestClientRegistry_SeedSampleData_InsertsTwentyWithoutIDs(t *testing.T) {
	registry, clients, _, _ := newTestRegistry(t)
	ctx := context.Background()

	var inserted []models.Client
	clients.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Client) (int64, error) {
			inserted = append(inserted, c)
			return int64(len(inserted)), nil
		}).
		Times(20)

	require.NoError(t, registry.SeedSampleData(ctx).Wait(ctx))
	require.Len(t, inserted, 20)
	assert.Equal(t, models.Client{Name: "João Silva", Email: "joao@email.com", ExternalRef: "001"}, inserted[0])
	assert.Equal(t, models.Client{Name: "Vanessa Araújo", Email: "vanessa@email.com", ExternalRef: "020"}, inserted[19])
	for _, c := range inserted {
		assert.False(t, c.HasID())
	}
}

func TestClientRegistry_SeedSampleData_StopsOnStoreError(t *testing.T) {
	registry, clients, _, _ := newTestRegistry(t)
	ctx := context.Background()

	gomock.InOrder(
		clients.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2),
		clients.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrStore),
	)

	err := registry.SeedSampleData(ctx).Wait(ctx)
	assert.ErrorIs(t, err, ErrSeedFailed)
	assert.ErrorIs(t, err, store.ErrStore)
	assert.Contains(t, err.Error(), "inserted 2 of 20")
}

// ── SyncRemote ───────────────────────────────────────────────────────────────

func TestClientRegistry_SyncRemote(t *testing.T) {
	registry, _, syncSvc, exec := newTestRegistry(t)
	ctx := context.Background()

	syncSvc.EXPECT().Sync(gomock.Any()).Return(models.SyncReport{Fetched: 10, Imported: 10}, nil)

	assert.NoError(t, registry.SyncRemote(ctx).Wait(ctx))
	assert.Equal(t, []string{TaskSync}, exec.names)
}

func TestClientRegistry_SyncRemote_FailureIsReportedNotRaised(t *testing.T) {
	registry, _, syncSvc, _ := newTestRegistry(t)
	ctx := context.Background()

	syncErr := errors.Join(ErrSyncFailed, adapter.ErrNetwork)
	syncSvc.EXPECT().Sync(gomock.Any()).Return(models.SyncReport{}, syncErr)

	var task *workers.Task
	require.NotPanics(t, func() { task = registry.SyncRemote(ctx) })
	assert.ErrorIs(t, task.Wait(ctx), adapter.ErrNetwork)
}

func TestSampleClients(t *testing.T) {
	samples := SampleClients()
	require.Len(t, samples, 20)

	refs := make(map[string]struct{}, len(samples))
	for _, c := range samples {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Email)
		refs[c.ExternalRef] = struct{}{}
	}
	assert.Len(t, refs, 20)
}
