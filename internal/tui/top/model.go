// Package top contains the top-level TUI model: the portal frame around the
// tab set.
package top

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	zone "github.com/lrstanley/bubblezone"

	"github.com/atriumhq/atrium/internal/feed"
	"github.com/atriumhq/atrium/internal/logging"
	"github.com/atriumhq/atrium/internal/tui"
	"github.com/atriumhq/atrium/internal/tui/keys"
	"github.com/atriumhq/atrium/internal/tui/logs"
	"github.com/atriumhq/atrium/internal/tui/panel"
	"github.com/atriumhq/atrium/internal/tui/tabs"
	"github.com/atriumhq/atrium/internal/version"
)

type model struct {
	tabs tabs.TabSet

	width  int
	height int

	showHelp bool
	// header hides the logo block when false
	header bool

	showQuitPrompt bool
	quitPrompt     textinput.Model

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	logger *logging.Logger
	dump   *os.File
}

type Options struct {
	// Ctx bounds the lifetime of fetches kicked off by panels.
	Ctx     context.Context
	Service *feed.Service
	Logger  *logging.Logger

	// FirstTab is the title of the tab that is active on startup.
	FirstTab string
	// Autoplay is the interval at which the announcement carousel advances of
	// its own accord. Zero disables autoplay.
	Autoplay time.Duration
	// Transition is how long a tab or slide switch takes to settle.
	Transition time.Duration
	// Debug dumps messages to a file.
	Debug bool
}

// New constructs the top-level TUI model.
func New(opts Options) (model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
		if err != nil {
			return model{}, err
		}
	}

	// Tracks terminal regions for mouse hit-testing. Must be initialized
	// before any view calls zone.Mark.
	zone.NewGlobal()

	m := model{
		tabs:   tabs.New(0, 0, opts.Transition),
		header: true,
		logger: opts.Logger,
		dump:   dump,
	}

	popts := panel.Options{
		Ctx:        opts.Ctx,
		Service:    opts.Service,
		Autoplay:   opts.Autoplay,
		Transition: opts.Transition,
	}
	for _, tab := range []struct {
		title string
		model tea.Model
	}{
		{"Home", panel.NewBriefing(popts)},
		{"News", panel.NewNews(popts)},
		{"Quick Links", panel.NewQuickLinks(popts)},
		{"Team Updates", panel.NewTeamUpdates(popts)},
		{"Events", panel.NewEvents(popts)},
		{"Spotlight", panel.NewSpotlight(popts)},
		{"Logs", logs.New(opts.Logger, 0, 0)},
	} {
		if err := m.tabs.Add(tab.title, tab.model); err != nil {
			return model{}, err
		}
	}

	if opts.FirstTab != "" {
		if !m.tabs.Select(opts.FirstTab) {
			return model{}, fmt.Errorf("no such tab: %s", opts.FirstTab)
		}
	}
	return m, nil
}

func (m model) Init() tea.Cmd {
	return m.tabs.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	if m.showQuitPrompt {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.Global.Quit):
				// pressing ctrl-c again quits the app
				return m, tea.Quit
			case key.Matches(msg, localKeys.Yes):
				// 'y' quits the app
				return m, tea.Quit
			default:
				// any other key closes the prompt and returns to the app
				m.showQuitPrompt = false
				m.info = "canceled quitting atrium"
			}
		}
		return m, cmd
	}

	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height

		// amend msg to account for the frame and forward below to the tab set.
		msg = tea.WindowSizeMsg{
			Height: m.viewHeight(),
			Width:  m.viewWidth(),
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		// While a tab has a focused text input, keys belong to the input, not
		// to the global bindings; only ctrl-c keeps its meaning.
		if m.tabs.InputFocused() && !key.Matches(msg, keys.Global.Quit) {
			m.tabs, cmd = m.tabs.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.Global.Quit):
			// ctrl-c quits the app, but not before prompting the user for
			// confirmation.
			m.quitPrompt = textinput.New()
			m.quitPrompt.Prompt = ""
			m.quitPrompt.Focus()
			m.showQuitPrompt = true
			return m, textinput.Blink
		case key.Matches(msg, keys.Global.Escape):
			// <esc> closes help if open, otherwise the active tab decides
			// what to do with it.
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
			m.tabs, cmd = m.tabs.Update(msg)
			return m, cmd
		case key.Matches(msg, keys.Global.Help):
			// '?' toggles help
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Global.Header):
			// 'm' collapses or restores the header, reclaiming its rows for
			// the content area.
			m.header = !m.header
			m.tabs, cmd = m.tabs.Update(tea.WindowSizeMsg{
				Height: m.viewHeight(),
				Width:  m.viewWidth(),
			})
			return m, cmd
		default:
			// Send other keys to the tab set, which routes navigation keys
			// itself and hands anything else to the active tab.
			m.tabs, cmd = m.tabs.Update(msg)
			return m, cmd
		}
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			msg := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", msg, err)
			m.logger.Error(msg, "error", err)
		}
	case tui.InfoMsg:
		m.info = string(msg)
	default:
		// Send remaining msg types to the tab set, which fans them out to
		// every tab.
		m.tabs, cmd = m.tabs.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

var (
	logo = strings.Join([]string{
		"▄▀▄ ▀█▀ █▀▄ █ █ █ █▄ ▄█",
		"█▀█  █  █▀▄ █ █▄█ █ ▀ █",
	}, "\n")
	renderedLogo = tui.Bold.
			Copy().
			Margin(0, 1).
			Foreground(tui.DeepBlue).
			Render(logo)
	logoWidth            = lipgloss.Width(renderedLogo)
	headerHeight         = 2
	titleHeight          = 1
	horizontalRuleHeight = 1
	messageFooterHeight  = 1

	versionIcon = tui.Bold.Copy().
			Foreground(tui.DeepBlue).
			Margin(0, 2, 0, 1).
			Render("ⓥ")
	versionStyle = tui.Regular.Copy()
)

func (m model) View() string {
	var (
		content           string
		shortHelpBindings []key.Binding
	)

	currentHelpBindings := m.tabs.HelpBindings()

	if m.showHelp {
		content = lipgloss.NewStyle().
			Margin(1).
			Render(
				fullHelpView(
					currentHelpBindings,
					keys.KeyMapToSlice(keys.Global),
					keys.KeyMapToSlice(keys.Navigation),
				),
			)
		shortHelpBindings = []key.Binding{
			key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "close help"),
			),
		}
	} else if m.showQuitPrompt {
		content = lipgloss.NewStyle().
			Margin(0, 1).
			Render(fmt.Sprintf("Quit atrium? (y/N): %s", m.quitPrompt.View()))
	} else {
		content = m.tabs.View()
		shortHelpBindings = append(
			currentHelpBindings,
			keys.KeyMapToSlice(keys.Global)...,
		)
	}

	// Page title line: the active tab's title on the left, its position in
	// the set on the right.
	pageTitle := tui.Regular.Copy().Margin(0, 1).Render(tui.TitleStyle.Render(m.tabs.ActiveTitle()))
	pageStatus := tui.Regular.
		Margin(0, 1).
		Width(m.width - tui.Width(pageTitle) - 2).
		Align(lipgloss.Right).
		Render(tui.Padded.Copy().Render(m.tabs.Position()))
	pageTitleLine := lipgloss.JoinHorizontal(lipgloss.Left, pageTitle, pageStatus)

	// Global-level info goes in the bottom right corner in the footer.
	metadata := tui.Padded.Copy().Render(version.Version)

	// Render any info/error message to be shown in the bottom left corner in
	// the footer, using whatever space is remaining to the left of the
	// metadata.
	var footerMsg string
	if m.err != nil {
		footerMsg = tui.Padded.Copy().
			Foreground(tui.Red).
			Render("Error: " + m.err.Error())
	} else if m.info != "" {
		footerMsg = tui.Padded.Copy().
			Foreground(tui.Black).
			Render(m.info)
	}

	rows := make([]string, 0, 6)
	if m.header {
		// Render help bindings in between the version and the logo. Set its
		// available width to the width of the terminal minus the width of
		// the version info, the logo, and its margins.
		globalStatic := lipgloss.JoinHorizontal(lipgloss.Left, versionIcon, versionStyle.Render(version.Version))
		shortHelpWidth := m.width - tui.Width(globalStatic) - logoWidth - 6
		shortHelp := lipgloss.NewStyle().
			Margin(0, 2, 0, 4).
			Width(shortHelpWidth).
			Render(shortHelpView(shortHelpBindings, shortHelpWidth))

		rows = append(rows, lipgloss.NewStyle().
			Height(headerHeight).
			Render(lipgloss.JoinHorizontal(lipgloss.Left, globalStatic, shortHelp, renderedLogo)),
		)
	}
	rows = append(rows,
		// title
		lipgloss.NewStyle().
			// Prohibit overflowing title wrapping to another line.
			MaxHeight(1).
			Inline(true).
			Width(m.width).
			Render(pageTitleLine),
		// horizontal rule
		strings.Repeat("─", max(0, m.width)),
		// content
		lipgloss.NewStyle().
			Height(m.viewHeight()).
			Render(content),
		// horizontal rule
		strings.Repeat("─", max(0, m.width)),
		// footer
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			tui.Regular.
				Inline(true).
				MaxWidth(m.width-tui.Width(metadata)).
				Width(m.width-tui.Width(metadata)).
				Render(footerMsg),
			metadata,
		),
	)

	// Scan strips zone markers from the final output while recording where
	// each marked region landed.
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Top, rows...))
}

// viewHeight retrieves the height available to the tab set beneath the
// header and title, and above the footer.
func (m model) viewHeight() int {
	h := m.height - titleHeight - 2*horizontalRuleHeight - messageFooterHeight
	if m.header {
		h -= headerHeight
	}
	return h
}

// viewWidth retrieves the width available within the main view
func (m model) viewWidth() int {
	return m.width
}
