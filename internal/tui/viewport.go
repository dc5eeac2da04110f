package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/hokaccha/go-prettyjson"
)

// Viewport is a wrapper of the upstream viewport bubble, adding a scrollbar
// and optional JSON prettification of its content.
type Viewport struct {
	viewport viewport.Model

	content []byte
	json    bool
}

type ViewportOptions struct {
	Width  int
	Height int
	// JSON is true if the content is a json object
	JSON bool
}

func NewViewport(opts ViewportOptions) Viewport {
	m := Viewport{
		viewport: viewport.New(0, 0),
		json:     opts.JSON,
	}
	m.SetDimensions(opts.Width, opts.Height)
	return m
}

func (m Viewport) Init() tea.Cmd {
	return nil
}

func (m Viewport) Update(msg tea.Msg) (Viewport, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Viewport) View() string {
	scrollbar := Scrollbar(
		m.viewport.Height,
		m.viewport.TotalLineCount(),
		m.viewport.VisibleLineCount(),
		m.viewport.YOffset,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), scrollbar)
}

func (m *Viewport) SetDimensions(width, height int) {
	width = max(0, width-ScrollbarWidth)
	// If width has changed, re-wrap existing content.
	rewrap := m.viewport.Width != width
	m.viewport.Width = width
	m.viewport.Height = height
	if rewrap {
		m.setContent()
	}
}

// SetContent replaces the viewport's content. JSON content is prettified
// first.
func (m *Viewport) SetContent(content []byte) error {
	var err error
	if m.json {
		if prettified, fmterr := prettyjson.Format(content); fmterr != nil {
			// In the event of an error, still set unprettified content below.
			err = fmt.Errorf("pretty printing json content: %w", fmterr)
		} else {
			content = prettified
		}
	}
	m.content = content
	m.setContent()
	return err
}

func (m *Viewport) setContent() {
	// Wrap content to the width of the viewport, whilst respecting ANSI escape
	// codes (i.e. don't split codes across lines).
	wrapped := ansi.Wrap(ansi.Wordwrap(string(m.content), m.viewport.Width, ""), m.viewport.Width, "")
	m.viewport.SetContent(wrapped)
}
