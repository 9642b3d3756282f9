package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/ether-notes/internal/app"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/dustin/go-humanize"
)

const msgLockedBody = "Encrypted note. Only its author can read it."

// renderFunc turns a note body into terminal output.
type renderFunc func(body string) (string, error)

// listModel is the "Your Notes" pane. Views arrive newest first and are
// shown in that order.
type listModel struct {
	views     []models.NoteView
	stale     bool
	fetchedAt time.Time

	loading bool
	loaded  bool
	err     error

	cursor int
}

func (m *listModel) startLoading() {
	m.loading = true
}

// apply stores a reload outcome. A stale result still replaces the views;
// an error without any views keeps whatever was shown before.
func (m *listModel) apply(result models.ReloadResult, err error) {
	m.loading = false

	if err != nil && !result.Stale {
		m.err = err
		m.loaded = m.loaded || len(m.views) > 0
		return
	}

	m.err = nil
	m.views = result.Views
	m.stale = result.Stale
	m.fetchedAt = result.FetchedAt
	m.loaded = true
	if m.cursor >= len(m.views) {
		m.cursor = max(len(m.views)-1, 0)
	}
}

func (m *listModel) move(delta int) {
	if len(m.views) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.views)-1)
}

func (m listModel) selected() (models.NoteView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.views) {
		return models.NoteView{}, false
	}
	return m.views[m.cursor], true
}

func (m listModel) View(focused bool, render renderFunc, now time.Time) string {
	var b strings.Builder

	switch {
	case m.loading && !m.loaded:
		b.WriteString(titleStyle.Render("Loading Your Notes..."))
	case m.err != nil && len(m.views) == 0:
		b.WriteString(errorStyle.Render(app.MsgErrorFetchingNotes))
		b.WriteString("\n")
		b.WriteString(app.MsgErrorFetchingNotesHint)
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.err.Error()))
	case len(m.views) == 0:
		b.WriteString(titleStyle.Render(app.MsgNoNotesYet))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(app.MsgNoNotesYetHint))
	default:
		b.WriteString(titleStyle.Render("Your Notes"))
		if m.loading {
			b.WriteString(mutedStyle.Render("  refreshing…"))
		}
		b.WriteString("\n")
		if m.stale {
			b.WriteString(errorStyle.Render(offlineBanner(m.fetchedAt, now)))
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString(errorStyle.Render(app.MsgErrorFetchingNotes))
			b.WriteString(mutedStyle.Render("  " + m.err.Error()))
			b.WriteString("\n")
		}
		for i, v := range m.views {
			b.WriteString("\n")
			b.WriteString(renderCard(v, focused && i == m.cursor, render, now))
		}
	}

	style := paneStyle
	if focused {
		style = focusedPaneStyle
	}
	return style.Render(b.String())
}

// offlineBanner heads a list rebuilt from the local cache.
func offlineBanner(cachedAt, now time.Time) string {
	if cachedAt.IsZero() {
		return "Offline: showing cached notes"
	}
	return "Offline: showing notes cached " + humanize.RelTime(cachedAt, now, "ago", "from now")
}

func renderCard(v models.NoteView, selected bool, render renderFunc, now time.Time) string {
	var b strings.Builder

	b.WriteString(badge(v.Decoded.Visibility))
	b.WriteString(mutedStyle.Render("  " + humanize.RelTime(v.Note.Time(), now, "ago", "from now")))
	if v.MintEligible {
		b.WriteString(mutedStyle.Render("  · mintable"))
	}
	b.WriteString("\n")

	switch {
	case v.Err != nil:
		b.WriteString(errorStyle.Render(app.MsgDecryptionFailed))
	case v.Decoded.Visibility == models.PrivateLocked:
		b.WriteString(mutedStyle.Render(msgLockedBody))
	default:
		body := v.Decoded.Text()
		if out, err := render(body); err == nil {
			body = strings.TrimSpace(out)
		}
		b.WriteString(body)
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Render(b.String())
}

func badge(v models.Visibility) string {
	switch v {
	case models.PrivateUnlocked:
		return unlockedBadge
	case models.PrivateLocked:
		return lockedBadge
	default:
		return publicBadge
	}
}
