// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/client-registry/models"
)

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.message + "\n\ny yes    n no")
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close")
}

func renderBuildInfoWindow(info models.BuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: clients\n")
	b.WriteString("Version: " + info.Version() + "\n")
	b.WriteString("Date: " + info.Date() + "\n")
	b.WriteString("Commit: " + info.Commit())

	return renderPage("ABOUT", b.String(), "esc: back")
}
