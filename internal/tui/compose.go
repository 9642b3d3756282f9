package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/ether-notes/internal/codec"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const composePlaceholder = "Your thoughts on the blockchain..."

// composeModel is the "Write a New Note" pane.
type composeModel struct {
	input   textarea.Model
	spinner spinner.Model

	private bool

	// busy is set from the moment a write starts until its result arrives.
	busy  bool
	stage models.TxStage
}

func newComposeModel() composeModel {
	input := textarea.New()
	input.Placeholder = composePlaceholder
	input.CharLimit = codec.MaxPlaintextLength
	input.ShowLineNumbers = false
	input.SetHeight(4)
	input.SetWidth(60)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return composeModel{input: input, spinner: sp}
}

func (m composeModel) draft() models.NoteDraft {
	return models.NoteDraft{Body: m.input.Value(), Private: m.private}
}

func (m composeModel) blank() bool {
	return strings.TrimSpace(m.input.Value()) == ""
}

func (m *composeModel) focus() tea.Cmd {
	return m.input.Focus()
}

func (m *composeModel) blur() {
	m.input.Blur()
}

func (m *composeModel) start() tea.Cmd {
	m.busy = true
	m.stage = 0
	m.input.Blur()
	return m.spinner.Tick
}

// finish ends a write. A successful write clears the draft and resets the
// visibility toggle; a failed one keeps both so the user can retry.
func (m *composeModel) finish(ok bool) {
	m.busy = false
	m.stage = 0
	if ok {
		m.input.Reset()
		m.private = false
	}
}

func (m composeModel) Update(msg tea.Msg) (composeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m composeModel) View(focused bool) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Write a New Note"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	toggle := "[ ] Private"
	if m.private {
		toggle = "[x] Private"
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		mutedStyle.Render(counter(utf8.RuneCountInString(m.input.Value()), codec.MaxPlaintextLength)),
		"   ",
		toggle,
	))
	b.WriteString("\n\n")
	b.WriteString(m.button())

	style := paneStyle
	if focused {
		style = focusedPaneStyle
	}
	return style.Render(b.String())
}

func (m composeModel) button() string {
	if !m.busy {
		return "[ Save Note ]"
	}

	label := m.stage.String()
	if label == "" {
		label = "Preparing…"
	}
	return statusStyle.Render(m.spinner.View() + " " + label)
}
