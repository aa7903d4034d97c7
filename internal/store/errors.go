// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the store. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrStore wraps every failure of the underlying database (I/O, driver,
	// constraint). It is what the registry reports as a storage error.
	ErrStore = errors.New("store error")

	// ErrClientNotFound is returned by Get when no row has the requested id.
	ErrClientNotFound = errors.New("client was not found")

	// ErrUserNotFound is returned by the placeholder user directory when no
	// remote user has the requested id.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUnsupportedDriver is returned when the configured driver is not one
	// of the supported database/sql drivers.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrSubscriptionClosed is reported by [Subscription.Err] after the
	// subscriber closed the subscription or the store was shut down.
	ErrSubscriptionClosed = errors.New("subscription closed")
)

// Low-level database operation errors. They are joined with [ErrStore] by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query or statement
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan client row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan client rows")
)
