package tabs

import (
	tea "github.com/charmbracelet/bubbletea"
)

const headerHeight = 2

// models implementing tabStatus can report a status that'll be rendered
// alongside the title in the tab header.
type tabStatus interface {
	TabStatus() string
}

// A tab is one of a set of tabs. A tab has a title, and an embedded model,
// which is responsible for the visible content under the tab.
type Tab struct {
	tea.Model

	Title string
}

// resolveMsg completes the in-flight tab transition.
type resolveMsg struct{}
