// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/client-registry/internal/adapter"
	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/workers"
)

// humanizeError turns a task error into one status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrDecode):
		return "Remote API returned an unexpected response"
	case errors.Is(err, workers.ErrPoolClosed), errors.Is(err, context.Canceled):
		return "Shutting down, operation was not run"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or remote API unavailable"
	}

	switch {
	case errors.Is(err, adapter.ErrNetwork):
		return "Remote API error: " + err.Error()
	case errors.Is(err, store.ErrStore):
		return "Local storage error: " + err.Error()
	}

	return err.Error()
}
