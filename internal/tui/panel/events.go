package panel

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atriumhq/atrium/internal/feed"
	"github.com/atriumhq/atrium/internal/tui"
	"github.com/atriumhq/atrium/internal/tui/keys"
)

type eventsMsg struct {
	events []feed.Event
	err    error
}

// Events lists upcoming company events.
type Events struct {
	svc *feed.Service
	ctx context.Context

	spinner spinner.Model

	events  []feed.Event
	loading bool
	err     error

	inspect inspector

	width  int
	height int
}

func NewEvents(opts Options) Events {
	return Events{
		svc:     opts.Service,
		ctx:     opts.Ctx,
		spinner: newSpinner(),
		loading: true,
		inspect: newInspector(opts.Width, opts.Height),
		width:   opts.Width,
		height:  opts.Height,
	}
}

func (m Events) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m Events) fetch() tea.Msg {
	events, err := m.svc.Events(m.ctx)
	return eventsMsg{events: events, err: err}
}

func (m Events) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsMsg:
		m.loading = false
		m.events, m.err = msg.events, msg.err
		if m.err == nil {
			if err := m.inspect.set(m.events); err != nil {
				return m, tui.ReportError(err, "inspecting events payload")
			}
		}
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Global.Refresh):
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.fetch)
		case key.Matches(msg, keys.Global.Inspect):
			m.inspect.toggle()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.inspect.resize(msg.Width, msg.Height)
	}

	if m.inspect.on {
		return m, m.inspect.update(msg)
	}
	return m, nil
}

func (m Events) View() string {
	if m.inspect.on {
		return m.inspect.vp.View()
	}
	if m.loading {
		return loadingView("events", m.spinner)
	}
	if m.err != nil {
		return errorView(m.err)
	}

	rows := make([]string, 0, len(m.events))
	for _, e := range m.events {
		rows = append(rows, tui.Padded.Copy().Render(
			labelStyle.Render(e.Date)+"  "+
				headlineStyle.Render(e.Name)+
				labelStyle.Render("  "+e.Location),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func (m Events) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.Global.Refresh,
		keys.Global.Inspect,
	}
}
