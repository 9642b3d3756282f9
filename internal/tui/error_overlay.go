package tui

import (
	"github.com/MKhiriev/ether-notes/internal/app"
)

type toastModel struct {
	id      int
	toast   app.Toast
	isError bool
}

func (m toastModel) visible() bool {
	return m.toast.Title != ""
}

func (m toastModel) View() string {
	if !m.visible() {
		return ""
	}
	title := titleStyle.Render(m.toast.Title)
	if m.isError {
		title = errorStyle.Render(m.toast.Title)
	}
	content := title
	if m.toast.Description != "" {
		content += "\n" + m.toast.Description
	}
	return overlayBoxStyle.Render(content)
}
