// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/client-registry/models"
)

const (
	defaultListHeight = 15
	nameColumnWidth   = 28
	emailColumnWidth  = 30
)

type listModel struct {
	clients []models.Client
	idx     int
	height  int
	loading bool
	syncing bool
	spinner spinner.Model
	status  string
	lastErr string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true, height: defaultListHeight}
}

func (m listModel) current() (models.Client, bool) {
	if len(m.clients) == 0 || m.idx < 0 || m.idx >= len(m.clients) {
		return models.Client{}, false
	}
	return m.clients[m.idx], true
}

// setClients replaces the rows, keeping the cursor on the same client when it
// is still present.
func (m *listModel) setClients(clients []models.Client) {
	selected, hadSelection := m.current()

	m.clients = clients
	m.loading = false

	if hadSelection {
		for i, c := range clients {
			if c.ID == selected.ID {
				m.idx = i
				return
			}
		}
	}

	if m.idx >= len(m.clients) {
		m.idx = len(m.clients) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View() string {
	title := fmt.Sprintf("Clients (%d)", len(m.clients))
	if m.syncing {
		title += "  " + m.spinner.View() + " syncing"
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.clients) == 0:
		b.WriteString(mutedStyle.Render("No clients yet. Press n to add one, g to load sample data or s to import from the remote API."))
		b.WriteString("\n")
	default:
		from, to := visibleRange(m.idx, len(m.clients), m.height)
		for i := from; i < to; i++ {
			c := m.clients[i]
			row := padRight(fitText(c.Name, nameColumnWidth), nameColumnWidth) + "  " +
				padRight(fitText(c.Email, emailColumnWidth), emailColumnWidth) + "  " +
				mutedStyle.Render(c.ExternalRef)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + row))
			} else {
				b.WriteString("  " + row)
			}
			b.WriteString("\n")
		}
		if from > 0 || to < len(m.clients) {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("%d-%d of %d", from+1, to, len(m.clients))))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.lastErr != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.lastErr) + "\n")
	}

	return renderPage(title, b.String(),
		"n new  e edit  d delete  c copy email  g sample data  s sync  x clear all  v about  q quit")
}
