// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/client-registry/internal/logger"
	"github.com/MKhiriev/client-registry/internal/service"
	"github.com/MKhiriev/client-registry/internal/store"
	"github.com/MKhiriev/client-registry/internal/validators"
	"github.com/MKhiriev/client-registry/models"
)

type screen int

const (
	screenList screen = iota
	screenForm
)

// listChrome is the number of lines around the rows (title, dividers, help).
const listChrome = 14

type appModel struct {
	ctx       context.Context
	registry  service.ClientRegistry
	validator validators.Validator
	buildInfo models.BuildInfo
	logger    *logger.Logger

	sub           *store.Subscription
	currentScreen screen

	list listModel
	form formModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete *models.Client
	pendingClear  bool
	showBuildInfo bool
}

// newAppModel subscribes to the live list right away so the first snapshot
// is already on its way when the program starts.
func newAppModel(ctx context.Context, registry service.ClientRegistry, validator validators.Validator, buildInfo models.BuildInfo, logger *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		registry:      registry,
		validator:     validator,
		buildInfo:     buildInfo,
		logger:        logger,
		sub:           registry.ObserveAll(ctx),
		currentScreen: screenList,
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return cmdWatch(m.sub)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m.quit()
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case clientsMsg:
		m.list.setClients(msg.clients)
		return m, cmdWatch(m.sub)
	case feedClosedMsg:
		m.list.loading = false
		if msg.err != nil && !errors.Is(msg.err, store.ErrSubscriptionClosed) {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("live client list ended")
			m.showErrorf("Client list is no longer updated: " + humanizeError(msg.err))
		}
		return m, nil
	case taskDoneMsg:
		return m.onTaskDone(msg)
	case copiedMsg:
		if msg.err != nil {
			m.list.lastErr = msg.err.Error()
			return m, nil
		}
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.syncing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.list.height = max(msg.Height-listChrome, 3)
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	if m.sub != nil {
		m.sub.Close()
	}
	return m, tea.Quit
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingClear {
			m.pendingClear = false
			m.list.status = "Removing all clients..."
			return m, cmdAwait(m.ctx, m.registry.RemoveAll(m.ctx))
		}
		if m.pendingDelete != nil {
			client := *m.pendingDelete
			m.pendingDelete = nil
			return m, cmdAwait(m.ctx, m.registry.Remove(m.ctx, client))
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = nil
		m.pendingClear = false
	}
	return m, nil
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.clients)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit), key.Matches(keyMsg, keys.enter):
		client, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.form = newFormModel(&client)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		client, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.pendingDelete = &client
		m.confirm.message = fmt.Sprintf("Delete %q?", client.Name)
		m.showConfirm = true
	case key.Matches(keyMsg, keys.clear):
		if len(m.list.clients) == 0 {
			return m, nil
		}
		m.pendingClear = true
		m.confirm.message = fmt.Sprintf("Delete all %d clients?", len(m.list.clients))
		m.showConfirm = true
	case key.Matches(keyMsg, keys.copy):
		client, ok := m.list.current()
		if !ok || client.Email == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(client.Email)
	case key.Matches(keyMsg, keys.seed):
		m.list.status = "Adding sample data..."
		return m, cmdAwait(m.ctx, m.registry.SeedSampleData(m.ctx))
	case key.Matches(keyMsg, keys.sync):
		if m.list.syncing {
			return m, nil
		}
		m.list.syncing = true
		m.list.lastErr = ""
		return m, tea.Batch(m.list.spinner.Tick, cmdAwait(m.ctx, m.registry.SyncRemote(m.ctx)))
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m.quit()
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	client := m.form.toClient()

	fields := []string{validators.FieldName, validators.FieldEmail, validators.FieldExternalRef}
	if m.form.editing() {
		fields = append(fields, validators.FieldID)
	}
	if err := m.validator.Validate(m.ctx, client, fields...); err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	m.currentScreen = screenList
	m.list.lastErr = ""
	if m.form.editing() {
		m.list.status = "Saving..."
		return m, cmdAwait(m.ctx, m.registry.Edit(m.ctx, client))
	}
	m.list.status = "Adding..."
	return m, cmdAwait(m.ctx, m.registry.Add(m.ctx, client))
}

func (m appModel) onTaskDone(msg taskDoneMsg) (tea.Model, tea.Cmd) {
	if msg.name == service.TaskSync {
		m.list.syncing = false
	}

	if msg.err != nil {
		m.list.status = ""
		m.list.lastErr = humanizeError(msg.err)
		return m, nil
	}

	m.list.lastErr = ""
	m.list.status = taskDoneText(msg.name)
	return m, cmdClearStatus()
}

func taskDoneText(name string) string {
	switch name {
	case service.TaskAdd:
		return "Client added"
	case service.TaskEdit:
		return "Client saved"
	case service.TaskRemove:
		return "Client deleted"
	case service.TaskRemoveAll:
		return "All clients deleted"
	case service.TaskSeed:
		return "Sample data added"
	case service.TaskSync:
		return "Remote users imported"
	default:
		return "Done"
	}
}
