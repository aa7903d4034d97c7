// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

// Task is the pending result of a submitted job. Callers may wait for it,
// poll it, or drop it.
type Task struct {
	name string
	done chan struct{}
	once sync.Once
	err  error
}

func newTask(name string) *Task {
	return &Task{name: name, done: make(chan struct{})}
}

// Completed returns a task that is already finished with err.
func Completed(name string, err error) *Task {
	t := newTask(name)
	t.complete(err)
	return t
}

// Name identifies the operation, e.g. "sync".
func (t *Task) Name() string {
	return t.name
}

// Done is closed when the job has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the job result, or nil while it is still running.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the job finished or ctx ended and returns the job
// result or ctx.Err().
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Task) complete(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.done)
	})
}
