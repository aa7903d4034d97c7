// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/models"
)

// Subscription is one subscriber's view of the live client list.
//
// Updates delivers ordered snapshots of the whole table. The channel holds at
// most one pending snapshot: when the reader falls behind, the pending value
// is replaced by the newer one, so a slow reader skips intermediate states
// but always ends up on the latest. The channel is closed when the
// subscription ends; Err then reports why.
type Subscription struct {
	updates chan []models.Client
	done    chan struct{}
	onClose func(*Subscription)

	mu     sync.Mutex
	closed bool
	err    error
}

func newSubscription(onClose func(*Subscription)) *Subscription {
	return &Subscription{
		updates: make(chan []models.Client, 1),
		done:    make(chan struct{}),
		onClose: onClose,
	}
}

// Updates returns the snapshot channel.
func (s *Subscription) Updates() <-chan []models.Client {
	return s.updates
}

// Done is closed when the subscription ends.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Err returns nil while the subscription is active. After it ended it
// returns ErrSubscriptionClosed, or the wrapped ErrStore that terminated it.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close ends the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.terminate(ErrSubscriptionClosed)
}

func (s *Subscription) deliver(clients []models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	// drop the stale snapshot nobody has read yet
	select {
	case <-s.updates:
	default:
	}
	s.updates <- clients
}

func (s *Subscription) terminate(err error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.err = err
	close(s.updates)
	close(s.done)
	s.mu.Unlock()

	if s.onClose != nil {
		s.onClose(s)
	}
}

// clientFeed fans table snapshots out to subscribers. Refreshes run one at a
// time under refreshMu, so a subscriber never receives an older snapshot
// after a newer one.
type clientFeed struct {
	repo   ClientRepository
	logger *logger.Logger

	refreshMu sync.Mutex

	subsMu sync.Mutex
	subs   map[*Subscription]struct{}
}

func newClientFeed(repo ClientRepository, logger *logger.Logger) *clientFeed {
	return &clientFeed{
		repo:   repo,
		logger: logger,
		subs:   make(map[*Subscription]struct{}),
	}
}

func (f *clientFeed) subscribe(ctx context.Context) *Subscription {
	sub := newSubscription(f.remove)

	f.subsMu.Lock()
	f.subs[sub] = struct{}{}
	f.subsMu.Unlock()

	// initial snapshot
	go func() {
		f.refreshMu.Lock()
		defer f.refreshMu.Unlock()

		clients, err := f.repo.List(context.WithoutCancel(ctx))
		if err != nil {
			logger.FromContextOr(ctx, f.logger).Err(err).
				Str("func", "clientFeed.subscribe").
				Msg("failed to load initial client list")
			sub.terminate(err)
			return
		}
		sub.deliver(clients)
	}()

	go func() {
		select {
		case <-ctx.Done():
			sub.Close()
		case <-sub.done:
		}
	}()

	return sub
}

// publish re-reads the table and hands the result to every subscriber. A
// read failure ends all current subscriptions with that error.
func (f *clientFeed) publish(ctx context.Context) {
	f.refreshMu.Lock()
	defer f.refreshMu.Unlock()

	subs := f.subscribers()
	if len(subs) == 0 {
		return
	}

	clients, err := f.repo.List(context.WithoutCancel(ctx))
	if err != nil {
		logger.FromContextOr(ctx, f.logger).Err(err).
			Str("func", "clientFeed.publish").
			Int("subscribers", len(subs)).
			Msg("failed to refresh client list, closing subscriptions")
		for _, sub := range subs {
			sub.terminate(err)
		}
		return
	}

	for _, sub := range subs {
		sub.deliver(slices.Clone(clients))
	}
}

func (f *clientFeed) subscribers() []*Subscription {
	f.subsMu.Lock()
	defer f.subsMu.Unlock()

	subs := make([]*Subscription, 0, len(f.subs))
	for sub := range f.subs {
		subs = append(subs, sub)
	}
	return subs
}

func (f *clientFeed) remove(sub *Subscription) {
	f.subsMu.Lock()
	delete(f.subs, sub)
	f.subsMu.Unlock()
}

func (f *clientFeed) closeAll() {
	for _, sub := range f.subscribers() {
		sub.Close()
	}
}

// liveClientStore is the [LocalClientStore] implementation: a
// [ClientRepository] whose successful writes trigger a feed refresh.
type liveClientStore struct {
	ClientRepository
	feed *clientFeed
}

// NewLocalClientStore wraps repo so that every change is published to
// subscribers created by Watch.
func NewLocalClientStore(repo ClientRepository, logger *logger.Logger) LocalClientStore {
	return &liveClientStore{
		ClientRepository: repo,
		feed:             newClientFeed(repo, logger),
	}
}

func (s *liveClientStore) Watch(ctx context.Context) *Subscription {
	return s.feed.subscribe(ctx)
}

func (s *liveClientStore) Insert(ctx context.Context, client models.Client) (int64, error) {
	id, err := s.ClientRepository.Insert(ctx, client)
	if err != nil {
		return 0, err
	}
	s.feed.publish(ctx)
	return id, nil
}

func (s *liveClientStore) Update(ctx context.Context, client models.Client) (int64, error) {
	return s.publishIfChanged(ctx)(s.ClientRepository.Update(ctx, client))
}

func (s *liveClientStore) Delete(ctx context.Context, client models.Client) (int64, error) {
	return s.publishIfChanged(ctx)(s.ClientRepository.Delete(ctx, client))
}

func (s *liveClientStore) DeleteAll(ctx context.Context) (int64, error) {
	return s.publishIfChanged(ctx)(s.ClientRepository.DeleteAll(ctx))
}

func (s *liveClientStore) publishIfChanged(ctx context.Context) func(int64, error) (int64, error) {
	return func(affected int64, err error) (int64, error) {
		if err == nil && affected > 0 {
			s.feed.publish(ctx)
		}
		return affected, err
	}
}

func (s *liveClientStore) close() {
	s.feed.closeAll()
}
