// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/workers"
)

const statusTTL = 2 * time.Second

// writeClipboard is swapped in tests; headless CI has no clipboard.
var writeClipboard = clipboard.WriteAll

// cmdWatch waits for the next snapshot of sub. The model re-issues it after
// every clientsMsg, so exactly one read is outstanding at a time.
func cmdWatch(sub *store.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		clients, ok := <-sub.Updates()
		if !ok {
			return feedClosedMsg{err: sub.Err()}
		}
		return clientsMsg{clients: clients}
	}
}

func cmdAwait(ctx context.Context, task *workers.Task) tea.Cmd {
	if task == nil {
		return nil
	}
	return func() tea.Msg {
		err := task.Wait(ctx)
		return taskDoneMsg{name: task.Name(), err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
