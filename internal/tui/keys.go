package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	focus   key.Binding
	compose key.Binding
	esc     key.Binding
	save    key.Binding
	private key.Binding
	reload  key.Binding
	mint    key.Binding
	export  key.Binding
	copy    key.Binding
	account key.Binding
	info    key.Binding
	help    key.Binding
	quit    key.Binding
	forceQ  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	compose: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new note")),
	esc:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save note")),
	private: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "toggle private")),
	reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	mint:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mint NFT")),
	export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy note")),
	account: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy address")),
	info:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	forceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
}

// composeKeys is the help shown while the composer has focus.
type composeKeys struct{ keyMap }

func (k composeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.save, k.private, k.focus, k.esc}
}

func (k composeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// listKeys is the help shown while the note list has focus.
type listKeys struct{ keyMap }

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.compose, k.reload, k.mint, k.copy, k.help, k.quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.focus, k.compose},
		{k.reload, k.mint, k.export, k.copy, k.account},
		{k.info, k.help, k.quit},
	}
}
