// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/client-registry/internal/logger"
)

type job struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	task *Task
}

// Pool executes jobs on a fixed number of goroutines fed by a bounded
// queue. Jobs start in submission order; with more than one goroutine they
// may finish in any order.
type Pool struct {
	size   int
	queue  chan job
	logger *logger.Logger

	mu      sync.RWMutex
	closed  bool
	running bool
}

// NewPool creates a pool of size goroutines with room for queueSize pending
// jobs. Nothing runs until Run is called.
func NewPool(size, queueSize int, logger *logger.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		size:   size,
		queue:  make(chan job, queueSize),
		logger: logger,
	}
}

// Submit queues fn and returns its task at once unless the queue is full,
// in which case it waits for room or for ctx to end. fn receives ctx.
func (p *Pool) Submit(ctx context.Context, name string, fn func(ctx context.Context) error) *Task {
	task := newTask(name)
	if err := ctx.Err(); err != nil {
		task.complete(err)
		return task
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		task.complete(ErrPoolClosed)
		return task
	}

	select {
	case p.queue <- job{ctx: ctx, fn: fn, task: task}:
	case <-ctx.Done():
		task.complete(ctx.Err())
	}
	return task
}

// Run starts the goroutines and blocks until ctx ends. Jobs already queued
// are still executed before Run returns; later submissions fail with
// ErrPoolClosed. Run may only be called once.
func (p *Pool) Run(ctx context.Context) error {
	p.mu.Lock()
	if p.running || p.closed {
		p.mu.Unlock()
		return fmt.Errorf("%w: already started", ErrPoolClosed)
	}
	p.running = true
	p.mu.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < p.size; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range p.queue {
				p.execute(j)
			}
		}()
	}
	p.logger.Debug().Str("func", "Pool.Run").Int("size", p.size).Int("queue", cap(p.queue)).Msg("worker pool started")

	<-ctx.Done()

	p.mu.Lock()
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	wg.Wait()
	p.logger.Debug().Str("func", "Pool.Run").Msg("worker pool stopped")
	return nil
}

func (p *Pool) execute(j job) {
	if err := j.ctx.Err(); err != nil {
		j.task.complete(err)
		return
	}

	started := time.Now()
	err := p.call(j)
	j.task.complete(err)

	p.logger.Debug().
		Str("func", "Pool.execute").
		Str("task", j.task.Name()).
		Dur("duration", time.Since(started)).
		AnErr("result", err).
		Msg("task finished")
}

func (p *Pool) call(j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().Str("func", "Pool.call").Str("task", j.task.Name()).Interface("panic", r).Msg("task panicked")
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()
	return j.fn(j.ctx)
}
