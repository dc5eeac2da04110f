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

type spotlightMsg struct {
	spotlight feed.Spotlight
	err       error
}

// Spotlight profiles one employee.
type Spotlight struct {
	svc *feed.Service
	ctx context.Context

	spinner spinner.Model

	spotlight feed.Spotlight
	loading   bool
	err       error

	inspect inspector

	width  int
	height int
}

func NewSpotlight(opts Options) Spotlight {
	return Spotlight{
		svc:     opts.Service,
		ctx:     opts.Ctx,
		spinner: newSpinner(),
		loading: true,
		inspect: newInspector(opts.Width, opts.Height),
		width:   opts.Width,
		height:  opts.Height,
	}
}

func (m Spotlight) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m Spotlight) fetch() tea.Msg {
	spotlight, err := m.svc.Spotlight(m.ctx)
	return spotlightMsg{spotlight: spotlight, err: err}
}

func (m Spotlight) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spotlightMsg:
		m.loading = false
		m.spotlight, m.err = msg.spotlight, msg.err
		if m.err == nil {
			if err := m.inspect.set(m.spotlight); err != nil {
				return m, tui.ReportError(err, "inspecting spotlight payload")
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

func (m Spotlight) View() string {
	if m.inspect.on {
		return m.inspect.vp.View()
	}
	if m.loading {
		return loadingView("spotlight", m.spinner)
	}
	if m.err != nil {
		return errorView(m.err)
	}

	s := m.spotlight
	return tui.Padded.Copy().Render(lipgloss.JoinVertical(lipgloss.Top,
		headlineStyle.Render(s.Name),
		labelStyle.Render(s.Role+" · "+s.Department+" · "+s.Tenure),
		"",
		wordwrap.String(s.Blurb, m.width-2),
	))
}

func (m Spotlight) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.Global.Refresh,
		keys.Global.Inspect,
	}
}
