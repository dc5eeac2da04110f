// Package carousel renders a small set of announcement slides, automatically
// advancing through them on a timer while the pointer is elsewhere.
package carousel

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atriumhq/atrium/internal/cycle"
	"github.com/atriumhq/atrium/internal/tui"
	"github.com/atriumhq/atrium/internal/tui/keys"
)

// zoneID identifies the carousel's screen region for pointer hit-testing.
const zoneID = "carousel"

// Slide is one item cycled through by the carousel.
type Slide struct {
	Title string
	Body  string
}

// autoplayMsg advances the carousel on the autoplay interval. The serial
// identifies the countdown that scheduled it: manual navigation and hover
// bump the model's serial, turning any in-flight countdown into a dud.
type autoplayMsg struct {
	serial int
}

// resolveMsg completes the in-flight slide transition.
type resolveMsg struct{}

type Model struct {
	slides []Slide

	// selection state machine shared with the tab set widget
	cycle cycle.Cycle

	autoplay   time.Duration
	transition time.Duration

	// serial of the current autoplay countdown
	serial int
	// hovered is true while the pointer is over the carousel, suspending
	// autoplay
	hovered bool

	width int
}

type Options struct {
	Slides []Slide
	// Autoplay is the interval between automatic advances. Zero disables
	// autoplay.
	Autoplay time.Duration
	// Transition is how long a slide change takes to settle; zero settles
	// immediately.
	Transition time.Duration
	Width      int
}

func New(opts Options) Model {
	return Model{
		slides:     opts.Slides,
		cycle:      cycle.New(len(opts.Slides)),
		autoplay:   opts.Autoplay,
		transition: opts.Transition,
		width:      opts.Width,
	}
}

func (m Model) Init() tea.Cmd {
	return m.schedule()
}

// schedule starts the autoplay countdown. There is nothing to advance through
// with fewer than two slides.
func (m Model) schedule() tea.Cmd {
	if m.autoplay <= 0 || len(m.slides) < 2 || m.hovered {
		return nil
	}
	serial := m.serial
	return tea.Tick(m.autoplay, func(time.Time) tea.Msg {
		return autoplayMsg{serial: serial}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Navigation.SlideNext):
			return m, m.navigate(m.cycle.Next())
		case key.Matches(msg, keys.Navigation.SlidePrev):
			return m, m.navigate(m.cycle.Prev())
		}
	case autoplayMsg:
		if msg.serial != m.serial {
			// A countdown that was since reset; ignore.
			return m, nil
		}
		return m, m.navigate(m.cycle.Next())
	case resolveMsg:
		m.cycle.Resolve()
		return m, nil
	case tea.MouseMsg:
		if zone.Get(zoneID).InBounds(msg) {
			m.enter()
			return m, nil
		}
		return m, m.leave()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	return m, nil
}

// navigate schedules resolution of a transition the cycle has just begun, and
// restarts the autoplay countdown. A rejected navigation request needs
// nothing further.
func (m *Model) navigate(started bool) tea.Cmd {
	if !started {
		return nil
	}
	m.serial++
	if m.transition <= 0 {
		m.cycle.Resolve()
		return m.schedule()
	}
	return tea.Batch(
		tea.Tick(m.transition, func(time.Time) tea.Msg {
			return resolveMsg{}
		}),
		m.schedule(),
	)
}

// enter suspends autoplay while the pointer is over the carousel.
func (m *Model) enter() {
	if m.hovered {
		return
	}
	m.hovered = true
	// Invalidate the pending countdown.
	m.serial++
}

// leave resumes autoplay once the pointer moves off the carousel.
func (m *Model) leave() tea.Cmd {
	if !m.hovered {
		return nil
	}
	m.hovered = false
	m.serial++
	return m.schedule()
}

// Current returns the index of the active slide.
func (m Model) Current() int {
	return m.cycle.Current()
}

var (
	borderStyle = tui.Regular.Copy().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tui.Grey).
			Padding(0, 1)
	titleStyle     = tui.Bold.Copy().Foreground(tui.DeepBlue)
	activeDot      = tui.Bold.Copy().Foreground(tui.DeepBlue).Render("●")
	inactiveDot    = tui.Faint.Copy().Render("○")
	pausedBadge    = tui.Faint.Copy().Render("paused")
	bodyLineLimit  = 3
	dotsLeftMargin = 1
)

func (m Model) View() string {
	if len(m.slides) == 0 {
		return ""
	}
	slide := m.slides[m.cycle.Current()]

	innerWidth := max(0, m.width-borderStyle.GetHorizontalFrameSize())
	body := wordwrap.String(slide.Body, innerWidth)
	if lines := strings.Split(body, "\n"); len(lines) > bodyLineLimit {
		body = strings.Join(lines[:bodyLineLimit], "\n")
	}

	dots := make([]string, len(m.slides))
	for i := range m.slides {
		if i == m.cycle.Current() {
			dots[i] = activeDot
		} else {
			dots[i] = inactiveDot
		}
	}
	footer := strings.Repeat(" ", dotsLeftMargin) + strings.Join(dots, " ")
	if m.hovered {
		footer += strings.Repeat(" ", dotsLeftMargin) + pausedBadge
	}

	content := lipgloss.JoinVertical(lipgloss.Top,
		titleStyle.Render(tui.Truncate(slide.Title, innerWidth)),
		body,
		footer,
	)
	return zone.Mark(zoneID, borderStyle.Copy().Width(innerWidth).Render(content))
}
