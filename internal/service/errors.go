// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSyncFailed wraps the reason a remote import was abandoned or cut
	// short. The adapter or store error is wrapped alongside.
	ErrSyncFailed = errors.New("remote sync failed")

	// ErrSeedFailed wraps the store error that stopped sample seeding.
	ErrSeedFailed = errors.New("seeding sample data failed")
)
