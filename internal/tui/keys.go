package tui

import "github.com/charmbracelet/bubbles/key"

// StandardKeys defines common key bindings used across TUI screens.
type StandardKeys struct {
	Quit   key.Binding
	Select key.Binding
	Back   key.Binding
	Search key.Binding
	Help   key.Binding
}

// NewStandardKeys creates a standard set of key bindings.
func NewStandardKeys() StandardKeys {
	return StandardKeys{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
