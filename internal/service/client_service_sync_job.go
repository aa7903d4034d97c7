// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/client-registry/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncer   remoteSyncer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that calls syncer.SyncRemote every
// interval. The job is idle until Run or Start is called.
func NewClientSyncJob(syncer remoteSyncer, interval time.Duration, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncer: syncer, interval: interval, logger: logger}
}

// Run implements ClientSyncJob. With a non-positive configured interval it
// only waits for ctx.
func (j *clientSyncJob) Run(ctx context.Context) error {
	if j.interval > 0 {
		j.Start(ctx, j.interval)
		defer j.Stop()
	}
	<-ctx.Done()
	return nil
}

// Start implements ClientSyncJob. It stops any previously running ticker,
// then syncs every interval until ctx is cancelled or Stop is called. A
// non-positive interval defaults to 5 minutes. Each tick waits for its sync
// to finish, so runs never overlap. Start and Stop are serialized, so
// concurrent calls leave exactly one ticker running.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.syncer.SyncRemote(jobCtx).Wait(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Warn().Err(err).Str("func", "clientSyncJob.Start").Msg("periodic sync failed")
				}
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the ticker goroutine and blocks
// until it exited. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()
}

// stopLocked must be called with j.mu held. The ticker goroutine never takes
// j.mu, so waiting here cannot deadlock.
func (j *clientSyncJob) stopLocked() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}
