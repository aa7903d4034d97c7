// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs everything that must stay off the UI goroutine.
//
// A [Pool] executes submitted jobs on a fixed number of goroutines and hands
// back a [Task] for each one. [Workers] runs long-lived workers, such as the
// pool and the periodic sync job, until their context ends.
package workers

import "context"

// Worker is a long-lived background component. Run blocks until ctx is
// cancelled or the worker fails.
type Worker interface {
	Run(ctx context.Context) error
}
