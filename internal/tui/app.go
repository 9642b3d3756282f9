package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ether-notes/internal/app"
	"github.com/MKhiriev/ether-notes/internal/export"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/service"
	"github.com/MKhiriev/ether-notes/internal/wallet"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const toastTTL = 4 * time.Second

type pane int

const (
	paneCompose pane = iota
	paneList
)

// RootModel owns both panes:
// 1) routes keys to the focused pane
// 2) runs the service calls as commands
// 3) shows toasts for their outcomes
type RootModel struct {
	ctx       context.Context
	notes     service.NotesService
	session   wallet.Session
	buildInfo models.AppBuildInfo
	exportDir string
	logger    *logger.Logger

	compose composeModel
	list    listModel
	toast   toastModel
	help    help.Model

	focus         pane
	displayName   string
	showBuildInfo bool
	quitByUser    bool

	now    func() time.Time
	render renderFunc
	copy   func(string) error
}

func NewRootModel(ctx context.Context, notes service.NotesService, session wallet.Session, buildInfo models.AppBuildInfo, exportDir string, log *logger.Logger) RootModel {
	compose := newComposeModel()
	compose.input.Focus()

	return RootModel{
		ctx:         ctx,
		notes:       notes,
		session:     session,
		buildInfo:   buildInfo,
		exportDir:   exportDir,
		logger:      log,
		compose:     compose,
		list:        listModel{loading: true},
		help:        help.New(),
		focus:       paneCompose,
		displayName: session.Account.Hex(),
		now:         time.Now,
		render:      newMarkdownRenderer(),
		copy:        clipboard.WriteAll,
	}
}

func newMarkdownRenderer() renderFunc {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(72))
	if err != nil {
		return func(body string) (string, error) { return body, nil }
	}
	return r.Render
}

func (m RootModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.reload(), m.lookupName())
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.compose.input.SetWidth(max(msg.Width/2-8, 20))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case displayNameMsg:
		m.displayName = msg.name
		return m, nil

	case reloadedMsg:
		m.list.apply(msg.result, msg.err)
		if msg.err != nil {
			m.logger.Err(msg.err).Bool("stale", msg.result.Stale).Msg("reload notes")
			cmd := m.showError(msg.err)
			return m, cmd
		}
		if err := firstViewError(msg.result.Views); err != nil {
			m.logger.Warn().Err(err).Msg("note could not be decoded")
			cmd := m.showError(err)
			return m, cmd
		}
		return m, nil

	case stageMsg:
		if m.compose.busy {
			m.compose.stage = msg.stage
		}
		return m, waitStage(msg.ch)

	case submittedMsg:
		m.compose.finish(msg.err == nil)
		focus := m.refocus()
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("submit note")
			cmd := tea.Batch(focus, m.showError(msg.err))
			return m, cmd
		}
		m.logger.Info().Str("tx", msg.record.Hash).Msg("note saved")
		m.list.startLoading()
		cmd := tea.Batch(focus, m.showToast(app.Toast{Title: app.MsgNoteSaved, Description: app.MsgNoteSavedHint}), m.reload())
		return m, cmd

	case mintedMsg:
		m.compose.finish(false)
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("mint note")
			cmd := m.showError(msg.err)
			return m, cmd
		}
		desc := "Transaction " + fitText(msg.record.Hash, 18)
		if msg.record.TokenID != nil {
			desc = "Token #" + msg.record.TokenID.String()
		}
		cmd := m.showToast(app.Toast{Title: app.MsgNoteMinted, Description: desc})
		return m, cmd

	case exportedMsg:
		if msg.err != nil {
			cmd := m.showError(msg.err)
			return m, cmd
		}
		cmd := m.showToast(app.Toast{Title: "Exported", Description: fmt.Sprintf("%d notes written to %s", len(msg.paths), m.exportDir)})
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			cmd := m.showError(msg.err)
			return m, cmd
		}
		cmd := m.showToast(app.Toast{Title: "Copied"})
		return m, cmd

	case clearToastMsg:
		if msg.id == m.toast.id {
			m.toast = toastModel{id: m.toast.id}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQ) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if key.Matches(msg, keys.focus) {
		cmd := m.switchFocus()
		return m, cmd
	}

	if m.focus == paneCompose {
		return m.handleComposeKey(msg)
	}
	return m.handleListKey(msg)
}

func (m RootModel) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		cmd := m.switchFocus()
		return m, cmd
	case key.Matches(msg, keys.private):
		if !m.compose.busy {
			m.compose.private = !m.compose.private
		}
		return m, nil
	case key.Matches(msg, keys.save):
		return m.save()
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m RootModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list.move(1)
	case key.Matches(msg, keys.compose):
		cmd := m.switchFocus()
		return m, cmd
	case key.Matches(msg, keys.reload):
		if m.list.loading {
			return m, nil
		}
		m.list.startLoading()
		return m, m.reload()
	case key.Matches(msg, keys.mint):
		return m.mint()
	case key.Matches(msg, keys.copy):
		v, ok := m.list.selected()
		if !ok || v.Decoded.Body == nil {
			return m, nil
		}
		return m, m.copyText(*v.Decoded.Body)
	case key.Matches(msg, keys.account):
		return m, m.copyText(m.session.Account.Hex())
	case key.Matches(msg, keys.export):
		if len(m.list.views) == 0 {
			return m, nil
		}
		return m, m.exportNotes(m.list.views)
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *RootModel) refocus() tea.Cmd {
	if m.focus != paneCompose {
		return nil
	}
	return m.compose.focus()
}

func (m *RootModel) switchFocus() tea.Cmd {
	if m.focus == paneCompose {
		m.focus = paneList
		m.compose.blur()
		return nil
	}
	m.focus = paneCompose
	if m.compose.busy {
		return nil
	}
	return m.compose.focus()
}

func (m RootModel) save() (tea.Model, tea.Cmd) {
	if m.compose.busy {
		return m, nil
	}
	if m.compose.blank() {
		cmd := m.showToast(app.Toast{Title: app.MsgEmptyNote, Description: app.MsgEmptyNoteHint})
		return m, cmd
	}

	draft := m.compose.draft()
	spin := m.compose.start()

	stages := make(chan models.TxStage, 3)
	run := func() tea.Msg {
		defer close(stages)
		record, err := m.notes.Submit(m.ctx, m.session, draft, stageSender(stages))
		return submittedMsg{record: record, err: err}
	}
	return m, tea.Batch(spin, run, waitStage(stages))
}

func (m RootModel) mint() (tea.Model, tea.Cmd) {
	if m.compose.busy {
		return m, nil
	}
	v, ok := m.list.selected()
	if !ok || !v.MintEligible {
		return m, nil
	}

	spin := m.compose.start()
	note := v.Note

	stages := make(chan models.TxStage, 3)
	run := func() tea.Msg {
		defer close(stages)
		record, err := m.notes.Mint(m.ctx, m.session, note, stageSender(stages))
		return mintedMsg{record: record, err: err}
	}
	return m, tea.Batch(spin, run, waitStage(stages))
}

// firstViewError returns the first per-note failure of a reload.
func firstViewError(views []models.NoteView) error {
	for _, v := range views {
		if v.Err != nil {
			return v.Err
		}
	}
	return nil
}

// stageSender never blocks the service: a stage nobody reads in time is
// dropped.
func stageSender(ch chan<- models.TxStage) service.StageFunc {
	return func(s models.TxStage) {
		select {
		case ch <- s:
		default:
		}
	}
}

// waitStage reads the next stage and stops once the write closed ch.
func waitStage(ch <-chan models.TxStage) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return stageMsg{stage: s, ch: ch}
	}
}

func (m RootModel) reload() tea.Cmd {
	ctx, notes, session := m.ctx, m.notes, m.session
	return func() tea.Msg {
		result, err := notes.Reload(ctx, session, session.Account)
		return reloadedMsg{result: result, err: err}
	}
}

func (m RootModel) lookupName() tea.Cmd {
	ctx, notes, account := m.ctx, m.notes, m.session.Account
	return func() tea.Msg {
		return displayNameMsg{name: notes.DisplayName(ctx, account)}
	}
}

func (m RootModel) copyText(text string) tea.Cmd {
	cp := m.copy
	return func() tea.Msg {
		return copiedMsg{err: cp(text)}
	}
}

func (m RootModel) exportNotes(views []models.NoteView) tea.Cmd {
	dir := m.exportDir
	return func() tea.Msg {
		paths, err := export.Markdown(dir, views)
		return exportedMsg{paths: paths, err: err}
	}
}

func (m *RootModel) showToast(t app.Toast) tea.Cmd {
	return m.setToast(t, false)
}

func (m *RootModel) showError(err error) tea.Cmd {
	return m.setToast(describeError(err), true)
}

func (m *RootModel) setToast(t app.Toast, isError bool) tea.Cmd {
	id := m.toast.id + 1
	m.toast = toastModel{id: id, toast: t, isError: isError}
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return clearToastMsg{id: id} })
}

func (m RootModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.session.Account.Hex())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("EtherNotes"))
	b.WriteString(mutedStyle.Render("  " + m.displayName))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinVertical(lipgloss.Left,
		m.compose.View(m.focus == paneCompose),
		m.list.View(m.focus == paneList, m.render, m.now()),
	))
	b.WriteString("\n")

	if m.toast.visible() {
		b.WriteString(m.toast.View())
		b.WriteString("\n")
	}

	var keyHelp help.KeyMap = listKeys{keys}
	if m.focus == paneCompose {
		keyHelp = composeKeys{keys}
	}
	b.WriteString(m.help.View(keyHelp))

	return appStyle.Render(b.String())
}
