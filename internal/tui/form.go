// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/client-registry/models"
)

const (
	inputName = iota
	inputEmail
	inputExternalRef
	inputCount
)

var inputLabels = [inputCount]string{
	inputName:        "Name:           ",
	inputEmail:       "Email:          ",
	inputExternalRef: "Identification: ",
}

// formModel edits one client. A zero clientID means a new client.
type formModel struct {
	inputs   []textinput.Model
	focus    int
	clientID int64
	err      string
}

func newFormModel(client *models.Client) formModel {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Prompt = ""
		inputs[i].Width = 40
		inputs[i].CharLimit = 120
	}
	inputs[inputName].Placeholder = "Full name"
	inputs[inputEmail].Placeholder = "name@example.com"
	inputs[inputExternalRef].Placeholder = "001"
	inputs[inputName].Focus()

	m := formModel{inputs: inputs}
	if client == nil {
		return m
	}

	m.clientID = client.ID
	m.inputs[inputName].SetValue(client.Name)
	m.inputs[inputEmail].SetValue(client.Email)
	m.inputs[inputExternalRef].SetValue(client.ExternalRef)
	return m
}

func (m formModel) editing() bool {
	return m.clientID != 0
}

func (m formModel) toClient() models.Client {
	return models.Client{
		ID:          m.clientID,
		Name:        strings.TrimSpace(m.inputs[inputName].Value()),
		Email:       strings.TrimSpace(m.inputs[inputEmail].Value()),
		ExternalRef: strings.TrimSpace(m.inputs[inputExternalRef].Value()),
	}
}

func (m formModel) focusNext() formModel {
	return m.focusAt((m.focus + 1) % len(m.inputs))
}

func (m formModel) focusPrev() formModel {
	return m.focusAt((m.focus - 1 + len(m.inputs)) % len(m.inputs))
}

func (m formModel) focusAt(i int) formModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) View() string {
	title := "New client"
	if m.editing() {
		title = "Edit client: " + m.inputs[inputName].Value()
	}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(inputLabels[i])
		b.WriteString("[")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	if m.err != "" {
		b.WriteString("\n" + errorStyle.Render(m.err) + "\n")
	}

	return renderPage(title, b.String(), "esc cancel  tab next field  enter save")
}
