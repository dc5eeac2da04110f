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
	"github.com/atriumhq/atrium/internal/tui/carousel"
	"github.com/atriumhq/atrium/internal/tui/keys"
)

type briefingMsg struct {
	briefing feed.Briefing
	err      error
}

// Briefing is the portal's home panel: the announcement carousel above the
// daily briefing.
type Briefing struct {
	svc *feed.Service
	ctx context.Context

	carousel carousel.Model
	spinner  spinner.Model

	briefing feed.Briefing
	loading  bool
	err      error

	inspect inspector

	width  int
	height int
}

func NewBriefing(opts Options) Briefing {
	announcements := opts.Service.Announcements()
	slides := make([]carousel.Slide, len(announcements))
	for i, a := range announcements {
		slides[i] = carousel.Slide{Title: a.Title, Body: a.Body}
	}

	return Briefing{
		svc: opts.Service,
		ctx: opts.Ctx,
		carousel: carousel.New(carousel.Options{
			Slides:     slides,
			Autoplay:   opts.Autoplay,
			Transition: opts.Transition,
			Width:      opts.Width,
		}),
		spinner: newSpinner(),
		loading: true,
		inspect: newInspector(opts.Width, opts.Height),
		width:   opts.Width,
		height:  opts.Height,
	}
}

func (m Briefing) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch, m.carousel.Init())
}

func (m Briefing) fetch() tea.Msg {
	briefing, err := m.svc.Briefing(m.ctx)
	return briefingMsg{briefing: briefing, err: err}
}

func (m Briefing) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case briefingMsg:
		m.loading = false
		m.briefing, m.err = msg.briefing, msg.err
		if m.err == nil {
			if err := m.inspect.set(m.briefing); err != nil {
				cmds = append(cmds, tui.ReportError(err, "inspecting briefing payload"))
			}
		}
		return m, tea.Batch(cmds...)
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

	var cmd tea.Cmd
	m.carousel, cmd = m.carousel.Update(msg)
	cmds = append(cmds, cmd)
	if m.inspect.on {
		cmds = append(cmds, m.inspect.update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m Briefing) View() string {
	if m.inspect.on {
		return m.inspect.vp.View()
	}

	var body string
	switch {
	case m.loading:
		body = loadingView("briefing", m.spinner)
	case m.err != nil:
		body = errorView(m.err)
	default:
		body = lipgloss.JoinVertical(lipgloss.Top,
			headlineStyle.Copy().Padding(0, 1).Render(m.briefing.Headline),
			tui.Padded.Copy().Render(wordwrap.String(m.briefing.Summary, m.width-2)),
			"",
			tui.Padded.Copy().Render(labelStyle.Render("weather   ")+m.briefing.Weather),
			tui.Padded.Copy().Render(labelStyle.Render("cafeteria ")+m.briefing.Cafeteria),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Top, m.carousel.View(), body)
}

func (m Briefing) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.Navigation.SlideNext,
		keys.Navigation.SlidePrev,
		keys.Global.Refresh,
		keys.Global.Inspect,
	}
}
