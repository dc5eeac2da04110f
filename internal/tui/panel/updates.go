package panel

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atriumhq/atrium/internal/feed"
	"github.com/atriumhq/atrium/internal/tui"
	"github.com/atriumhq/atrium/internal/tui/keys"
)

type updatesMsg struct {
	updates []feed.TeamUpdate
	err     error
}

// TeamUpdates lists short status updates posted by teams.
type TeamUpdates struct {
	svc *feed.Service
	ctx context.Context

	spinner spinner.Model

	updates []feed.TeamUpdate
	loading bool
	err     error

	inspect inspector

	width  int
	height int
}

func NewTeamUpdates(opts Options) TeamUpdates {
	return TeamUpdates{
		svc:     opts.Service,
		ctx:     opts.Ctx,
		spinner: newSpinner(),
		loading: true,
		inspect: newInspector(opts.Width, opts.Height),
		width:   opts.Width,
		height:  opts.Height,
	}
}

func (m TeamUpdates) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m TeamUpdates) fetch() tea.Msg {
	updates, err := m.svc.TeamUpdates(m.ctx)
	return updatesMsg{updates: updates, err: err}
}

func (m TeamUpdates) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updatesMsg:
		m.loading = false
		m.updates, m.err = msg.updates, msg.err
		if m.err == nil {
			if err := m.inspect.set(m.updates); err != nil {
				return m, tui.ReportError(err, "inspecting team updates payload")
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

func (m TeamUpdates) View() string {
	if m.inspect.on {
		return m.inspect.vp.View()
	}
	if m.loading {
		return loadingView("team updates", m.spinner)
	}
	if m.err != nil {
		return errorView(m.err)
	}

	rows := make([]string, 0, len(m.updates))
	for _, u := range m.updates {
		rows = append(rows, tui.Padded.Copy().Render(lipgloss.JoinVertical(lipgloss.Top,
			headlineStyle.Render(u.Team)+labelStyle.Render(" · "+u.Author),
			wordwrap.String(u.Update, m.width-2),
			"",
		)))
	}
	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func (m TeamUpdates) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.Global.Refresh,
		keys.Global.Inspect,
	}
}
