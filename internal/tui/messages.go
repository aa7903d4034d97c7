// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/client-registry/models"
)

// clientsMsg carries a snapshot from the live client list.
type clientsMsg struct {
	clients []models.Client
}

// feedClosedMsg reports that the live list ended.
type feedClosedMsg struct {
	err error
}

// taskDoneMsg reports the outcome of a registry operation.
type taskDoneMsg struct {
	name string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
