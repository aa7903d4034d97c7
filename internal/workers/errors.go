// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	// ErrPoolClosed is the result of jobs submitted after the pool stopped.
	ErrPoolClosed = errors.New("worker pool is closed")

	// ErrJobPanicked is the result of a job that panicked.
	ErrJobPanicked = errors.New("job panicked")
)
