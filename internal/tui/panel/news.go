package panel

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atriumhq/atrium/internal/feed"
	"github.com/atriumhq/atrium/internal/tui"
	"github.com/atriumhq/atrium/internal/tui/keys"
)

// refreshInterval is how often the news panel re-fetches of its own accord.
const refreshInterval = time.Minute

var localNewsKeys = struct {
	Search   key.Binding
	Category key.Binding
}{
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search news"),
	),
	Category: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cycle category"),
	),
}

type newsMsg struct {
	articles []feed.Article
	err      error
}

// newsRefreshMsg triggers the periodic re-fetch. Its serial identifies the
// countdown that scheduled it; manual fetches bump the panel's serial,
// turning any in-flight countdown into a dud.
type newsRefreshMsg struct {
	serial int
}

// News lists company news articles, narrowed by a category filter and a
// free-text query.
type News struct {
	svc *feed.Service
	ctx context.Context

	spinner spinner.Model
	input   textinput.Model

	// searching is true while the query input has focus
	searching  bool
	categories []string
	category   int

	articles []feed.Article
	loading  bool
	err      error
	serial   int

	inspect inspector

	width  int
	height int
}

func NewNews(opts Options) News {
	input := textinput.New()
	input.Prompt = "search: "
	input.Placeholder = "title or preview text"

	return News{
		svc:        opts.Service,
		ctx:        opts.Ctx,
		spinner:    newSpinner(),
		input:      input,
		categories: opts.Service.Categories(),
		loading:    true,
		inspect:    newInspector(opts.Width, opts.Height),
		width:      opts.Width,
		height:     opts.Height,
	}
}

// InputFocused reports whether the search input has focus.
func (m News) InputFocused() bool {
	return m.searching
}

func (m News) filter() feed.NewsFilter {
	return feed.NewsFilter{
		Category: m.categories[m.category],
		Query:    m.input.Value(),
	}
}

func (m News) fetch() tea.Cmd {
	filter := m.filter()
	return func() tea.Msg {
		articles, err := m.svc.News(m.ctx, filter)
		return newsMsg{articles: articles, err: err}
	}
}

func (m News) schedule() tea.Cmd {
	serial := m.serial
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return newsRefreshMsg{serial: serial}
	})
}

// reload kicks off a fetch with the current filter, invalidating any pending
// refresh countdown and starting a fresh one.
func (m *News) reload() tea.Cmd {
	m.loading = true
	m.err = nil
	m.serial++
	return tea.Batch(m.spinner.Tick, m.fetch(), m.schedule())
}

func (m News) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(), m.schedule())
}

func (m News) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case newsMsg:
		m.loading = false
		m.articles, m.err = msg.articles, msg.err
		if m.err == nil {
			if err := m.inspect.set(m.articles); err != nil {
				return m, tui.ReportError(err, "inspecting news payload")
			}
		}
		return m, nil
	case newsRefreshMsg:
		if msg.serial != m.serial {
			return m, nil
		}
		return m, m.reload()
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			switch msg.Type {
			case tea.KeyEnter:
				m.searching = false
				m.input.Blur()
				return m, m.reload()
			case tea.KeyEsc:
				m.searching = false
				m.input.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
		}
		switch {
		case key.Matches(msg, localNewsKeys.Search):
			m.searching = true
			m.input.Focus()
			return m, textinput.Blink
		case key.Matches(msg, localNewsKeys.Category):
			m.category = (m.category + 1) % len(m.categories)
			return m, m.reload()
		case key.Matches(msg, keys.Global.Refresh):
			return m, m.reload()
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

func (m News) View() string {
	if m.inspect.on {
		return m.inspect.vp.View()
	}

	filterLine := tui.Padded.Copy().Render(
		labelStyle.Render("category ") + m.categories[m.category] +
			labelStyle.Render("  query ") + orDash(m.input.Value()),
	)
	if m.searching {
		filterLine = tui.Padded.Copy().Render(m.input.View())
	}

	var body string
	switch {
	case m.loading:
		body = loadingView("news", m.spinner)
	case m.err != nil:
		body = errorView(m.err)
	case len(m.articles) == 0:
		body = tui.Padded.Copy().Render(labelStyle.Render("no articles match the current filter"))
	default:
		rows := make([]string, 0, len(m.articles))
		for _, a := range m.articles {
			rows = append(rows, m.renderArticle(a))
		}
		body = lipgloss.JoinVertical(lipgloss.Top, rows...)
	}

	return lipgloss.JoinVertical(lipgloss.Top, filterLine, "", body)
}

func (m News) renderArticle(a feed.Article) string {
	title := headlineStyle.Render(tui.Truncate(a.Title, m.width-2))
	meta := labelStyle.Render(fmt.Sprintf("%s · %s · ", a.Published, a.Author)) +
		categoryStyle.Render(a.Category)
	preview := wordwrap.String(a.Preview, m.width-2)
	return tui.Padded.Copy().Render(
		lipgloss.JoinVertical(lipgloss.Top, title, meta, preview, ""),
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// TabStatus reports the article count alongside the tab title.
func (m News) TabStatus() string {
	if m.loading || m.err != nil {
		return ""
	}
	return fmt.Sprintf("(%d)", len(m.articles))
}

func (m News) HelpBindings() []key.Binding {
	return []key.Binding{
		localNewsKeys.Search,
		localNewsKeys.Category,
		keys.Global.Refresh,
		keys.Global.Inspect,
	}
}
