package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Refresh key.Binding
	Inspect key.Binding
	Header  key.Binding
	Escape  key.Binding
	Quit    key.Binding
	Help    key.Binding
}

var Global = global{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh panel"),
	),
	Inspect: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "inspect payload"),
	),
	Header: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "toggle header"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
