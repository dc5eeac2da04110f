package tabs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/atriumhq/atrium/internal/cycle"
	"github.com/atriumhq/atrium/internal/tui"
	"github.com/atriumhq/atrium/internal/tui/keys"
)

var ErrDuplicateTab = errors.New("not allowed to create tabs with duplicate titles")

// TabSet is a related set of zero or more tabs, one of which is active, i.e.
// its contents are rendered. Navigation wraps around at either end, and while
// a switch is in progress further navigation is dropped.
type TabSet struct {
	tabs []Tab

	// selection state machine shared with the carousel widget
	cycle cycle.Cycle

	// Width and height of the content area
	width  int
	height int

	// how long a tab switch takes to settle; zero settles immediately
	transition time.Duration
}

func New(width, height int, transition time.Duration) TabSet {
	return TabSet{
		width:      width,
		height:     height,
		transition: transition,
	}
}

// Add adds a tab to the set. The title must be unique in the set. Tabs are
// expected to be added before the set is navigated.
func (m *TabSet) Add(title string, model tea.Model) error {
	for _, tab := range m.tabs {
		if tab.Title == title {
			return ErrDuplicateTab
		}
	}
	m.tabs = append(m.tabs, Tab{Model: model, Title: title})
	m.cycle = cycle.New(len(m.tabs))
	return nil
}

// Select makes the tab with the given title active, settling immediately.
// Returns false if no tab has the title.
func (m *TabSet) Select(title string) bool {
	for i, tab := range m.tabs {
		if tab.Title == title {
			if m.cycle.GoTo(i) {
				m.cycle.Resolve()
			}
			return true
		}
	}
	return false
}

// Init initializes the existing tabs in the collection.
func (m TabSet) Init() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.tabs))
	for i, tab := range m.tabs {
		cmds[i] = tab.Init()
	}
	return tea.Batch(cmds...)
}

// Active returns the currently active tab. If there are no tabs, then false
// is returned.
func (m TabSet) Active() (Tab, bool) {
	if len(m.tabs) > 0 {
		return m.tabs[m.cycle.Current()], true
	}
	return Tab{}, false
}

// ActiveTitle returns the title of the currently active tab. If there are no
// tabs, then an empty string is returned.
func (m TabSet) ActiveTitle() string {
	if len(m.tabs) > 0 {
		return m.tabs[m.cycle.Current()].Title
	}
	return ""
}

// Position describes the active tab's place in the set, e.g. "2/7".
func (m TabSet) Position() string {
	if len(m.tabs) == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", m.cycle.Current()+1, len(m.tabs))
}

func (m TabSet) HelpBindings() (bindings []key.Binding) {
	if active, ok := m.Active(); ok {
		if bindings, ok := active.Model.(tui.ModelHelpBindings); ok {
			return bindings.HelpBindings()
		}
	}
	return nil
}

// InputFocused reports whether the active tab has a focused text input, in
// which case keys must reach the tab rather than trigger navigation.
func (m TabSet) InputFocused() bool {
	if active, ok := m.Active(); ok {
		if input, ok := active.Model.(tui.ModelTextInput); ok {
			return input.InputFocused()
		}
	}
	return false
}

func (m TabSet) Update(msg tea.Msg) (TabSet, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.InputFocused() {
			return m, m.updateActive(msg)
		}
		var cmd tea.Cmd
		switch {
		case key.Matches(msg, keys.Navigation.TabNext):
			cmd = m.navigate(m.cycle.Next())
		case key.Matches(msg, keys.Navigation.TabPrev):
			cmd = m.navigate(m.cycle.Prev())
		case key.Matches(msg, keys.Navigation.FirstTab):
			cmd = m.navigate(m.cycle.First())
		case key.Matches(msg, keys.Navigation.LastTab):
			cmd = m.navigate(m.cycle.Last())
		default:
			// Send other keys to active tab
			cmd = m.updateActive(msg)
		}
		return m, cmd
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for i := range m.tabs {
				if zone.Get(m.zoneID(i)).InBounds(msg) {
					return m, m.navigate(m.cycle.GoTo(i))
				}
			}
		}
		// Other mouse events concern only the visible tab.
		cmd := m.updateActive(msg)
		return m, cmd
	case resolveMsg:
		m.cycle.Resolve()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Relay modified resize message onto each tab model
		cmds = append(cmds, m.updateTabs(tea.WindowSizeMsg{
			Width:  m.contentWidth(),
			Height: m.contentHeight(),
		}))
		return m, tea.Batch(cmds...)
	}

	// Updates each tab's respective model in-place.
	cmds = append(cmds, m.updateTabs(msg))

	return m, tea.Batch(cmds...)
}

// navigate schedules resolution of a transition the cycle has just begun. A
// rejected navigation request needs nothing further.
func (m *TabSet) navigate(started bool) tea.Cmd {
	if !started {
		return nil
	}
	if m.transition <= 0 {
		m.cycle.Resolve()
		return nil
	}
	return tea.Tick(m.transition, func(time.Time) tea.Msg {
		return resolveMsg{}
	})
}

func (m *TabSet) updateTabs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.tabs))
	for i := range m.tabs {
		cmds[i] = m.updateTab(i, msg)
	}
	return tea.Batch(cmds...)
}

func (m *TabSet) updateTab(tabIndex int, msg tea.Msg) tea.Cmd {
	updated, cmd := m.tabs[tabIndex].Update(msg)
	m.tabs[tabIndex].Model = updated
	return cmd
}

func (m *TabSet) updateActive(msg tea.Msg) tea.Cmd {
	if _, ok := m.Active(); ok {
		return m.updateTab(m.cycle.Current(), msg)
	}
	return nil
}

func (m TabSet) zoneID(tabIndex int) string {
	return fmt.Sprintf("tab-%d", tabIndex)
}

var (
	activeTabStyle   = tui.Bold.Copy().Foreground(tui.ActiveTabColor)
	inactiveTabStyle = tui.Regular.Copy().Foreground(tui.InactiveTabColor)
)

func (m TabSet) View() string {
	var (
		tabHeaders       []string
		tabsHeadersWidth int
	)
	for i, t := range m.tabs {
		var (
			headingStyle  lipgloss.Style
			underlineChar string
		)
		switch {
		case i == m.cycle.Current():
			headingStyle = activeTabStyle.Copy()
			underlineChar = "━"
		case m.cycle.Transitioning() && i == m.cycle.Target():
			// The incoming tab's underline already hints at where the switch
			// is heading, but the outgoing tab stays active until the switch
			// settles.
			headingStyle = inactiveTabStyle.Copy().Foreground(tui.ActiveTabColor)
			underlineChar = "─"
		default:
			headingStyle = inactiveTabStyle.Copy()
			underlineChar = "─"
		}
		heading := headingStyle.Copy().Padding(0, 1).Render(t.Title)
		if status, ok := t.Model.(tabStatus); ok {
			heading += headingStyle.Copy().Bold(false).Padding(0, 1, 0, 0).Render(status.TabStatus())
		}
		underline := headingStyle.Render(strings.Repeat(underlineChar, tui.Width(heading)))
		rendered := lipgloss.JoinVertical(lipgloss.Top, zone.Mark(m.zoneID(i), heading), underline)
		tabHeaders = append(tabHeaders, rendered)
		tabsHeadersWidth += tui.Width(heading)
	}

	// Populate remaining space to the right of the tab headers with a faint
	// grey underline.
	remainingWidth := max(0, m.width-tabsHeadersWidth)
	tabHeaders = append(tabHeaders, lipgloss.JoinVertical(lipgloss.Top,
		"",
		inactiveTabStyle.Copy().Render(strings.Repeat("─", remainingWidth)),
	))

	// Join tab headers and filler together
	tabHeadersContainer := lipgloss.JoinHorizontal(lipgloss.Bottom, tabHeaders...)

	var tabContent string
	if len(m.tabs) > 0 {
		tabContent = m.tabs[m.cycle.Current()].View()
	}
	return lipgloss.JoinVertical(lipgloss.Top, tabHeadersContainer, tabContent)
}

// Width of the tab content area
func (m TabSet) contentWidth() int {
	return m.width
}

// Height of the tab content area
func (m TabSet) contentHeight() int {
	return m.height - headerHeight
}
