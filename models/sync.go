// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncReport summarises one import run from the remote API.
type SyncReport struct {
	// Fetched is the number of users returned by the remote API.
	Fetched int `json:"fetched"`

	// Imported is the number of users written to the local store. It is
	// smaller than Fetched when users were skipped or a local write failed
	// mid-run.
	Imported int `json:"imported"`

	// Skipped is the number of fetched users left out because they carry no
	// usable id.
	Skipped int `json:"skipped"`

	// Started is the wall-clock time the run began.
	Started time.Time `json:"started"`

	// Duration is how long the run took, fetch included.
	Duration time.Duration `json:"duration"`
}
