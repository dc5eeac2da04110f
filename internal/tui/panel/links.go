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

type linksMsg struct {
	links []feed.QuickLink
	err   error
}

// QuickLinks lists shortcuts to internal tools, one of which is selected.
type QuickLinks struct {
	svc *feed.Service
	ctx context.Context

	spinner spinner.Model

	links    []feed.QuickLink
	selected int
	loading  bool
	err      error

	inspect inspector

	width  int
	height int
}

func NewQuickLinks(opts Options) QuickLinks {
	return QuickLinks{
		svc:     opts.Service,
		ctx:     opts.Ctx,
		spinner: newSpinner(),
		loading: true,
		inspect: newInspector(opts.Width, opts.Height),
		width:   opts.Width,
		height:  opts.Height,
	}
}

func (m QuickLinks) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m QuickLinks) fetch() tea.Msg {
	links, err := m.svc.QuickLinks(m.ctx)
	return linksMsg{links: links, err: err}
}

func (m QuickLinks) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case linksMsg:
		m.loading = false
		m.links, m.err = msg.links, msg.err
		m.selected = 0
		if m.err == nil {
			if err := m.inspect.set(m.links); err != nil {
				return m, tui.ReportError(err, "inspecting quicklinks payload")
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
		case key.Matches(msg, keys.Navigation.LineUp):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case key.Matches(msg, keys.Navigation.LineDown):
			if m.selected < len(m.links)-1 {
				m.selected++
			}
			return m, nil
		case key.Matches(msg, keys.Navigation.Open):
			if len(m.links) > 0 {
				return m, tui.ReportInfo("opening %s", m.links[m.selected].URL)
			}
			return m, nil
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

func (m QuickLinks) View() string {
	if m.inspect.on {
		return m.inspect.vp.View()
	}
	if m.loading {
		return loadingView("quick links", m.spinner)
	}
	if m.err != nil {
		return errorView(m.err)
	}

	rows := make([]string, 0, len(m.links))
	for i, link := range m.links {
		label := headlineStyle.Render(link.Label)
		desc := labelStyle.Render(" — " + link.Description)
		row := tui.Padded.Copy().Render(label + desc)
		if i == m.selected {
			row = selectedStyle.Render(tui.Truncate(" "+link.Label+" — "+link.Description, m.width))
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func (m QuickLinks) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.Navigation.LineUp,
		keys.Navigation.LineDown,
		keys.Navigation.Open,
		keys.Global.Refresh,
		keys.Global.Inspect,
	}
}
