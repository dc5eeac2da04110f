package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type navigation struct {
	TabNext   key.Binding
	TabPrev   key.Binding
	FirstTab  key.Binding
	LastTab   key.Binding
	SlideNext key.Binding
	SlidePrev key.Binding
	LineUp    key.Binding
	LineDown  key.Binding
	Open      key.Binding
}

// Navigation returns key bindings for navigation.
var Navigation = navigation{
	TabNext: key.NewBinding(
		key.WithKeys("right", "tab"),
		key.WithHelp("→/tab", "next tab"),
	),
	TabPrev: key.NewBinding(
		key.WithKeys("left", "shift+tab"),
		key.WithHelp("←/shift+tab", "previous tab"),
	),
	FirstTab: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first tab"),
	),
	LastTab: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last tab"),
	),
	SlideNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next slide"),
	),
	SlidePrev: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "previous slide"),
	),
	LineUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	LineDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
}
