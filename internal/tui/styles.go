package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("12"))

	paneStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("12"))

	cardStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).PaddingLeft(1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("12"))

	publicBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("public")
	unlockedBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render("🔓 private")
	lockedBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("🔒 private")

	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
