package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// field is one "label: value" row of an info page.
type field struct {
	label, value string
}

// renderPage draws a titled box of aligned fields with a key hint below it.
func renderPage(title string, fields []field, hint string) string {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.label))
	}

	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		label := mutedStyle.Render(fmt.Sprintf("%-*s", width, f.label))
		rows = append(rows, label+"  "+f.value)
	}
	if len(rows) == 0 {
		rows = append(rows, mutedStyle.Render("-"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		overlayBoxStyle.Render(strings.Join(rows, "\n")),
		helpStyle.Render(hint+" • ctrl+c: quit"),
	)
}

// counter renders the "n / limit" label under the composer.
func counter(n, limit int) string {
	return fmt.Sprintf("%d / %d", n, limit)
}

// fitText cuts v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
