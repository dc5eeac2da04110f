package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
)

func TestPortal(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	// Expect the home panel: the first announcement in the carousel above the
	// daily briefing.
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "All-Hands Next Thursday") &&
			strings.Contains(s, "Welcome back! Here's what's happening today.") &&
			strings.Contains(s, "lemongrass chicken") &&
			matchPattern(t, `1/7`, s)
	})
}

func TestPortal_tabNavigation(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	// Wait for the home panel to load before navigating.
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Welcome back! Here's what's happening today.")
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	waitFor(t, tm, func(s string) bool {
		return matchPattern(t, `2/7`, s) &&
			strings.Contains(s, "IT Rolls Out New VPN Client")
	})

	// Navigation wraps around at the left edge.
	tm.Send(tea.KeyMsg{Type: tea.KeyLeft})
	tm.Send(tea.KeyMsg{Type: tea.KeyLeft})
	waitFor(t, tm, func(s string) bool {
		return matchPattern(t, `7/7`, s)
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyHome})
	waitFor(t, tm, func(s string) bool {
		return matchPattern(t, `1/7`, s)
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyEnd})
	waitFor(t, tm, func(s string) bool {
		return matchPattern(t, `7/7`, s) &&
			strings.Contains(s, "Logs")
	})
}

func TestPortal_newsSearch(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "(5)")
	})

	tm.Type("/")
	tm.Type("quarter")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	// The output stream accumulates, so earlier articles remain in it; the
	// filter line confirms the query was applied.
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "query quarter") &&
			strings.Contains(s, "Q2 Financial Results Exceed Expectations")
	})
}

func TestPortal_carouselAutoplay(t *testing.T) {
	t.Parallel()

	tm := setup(t, func(cfg *Config) {
		cfg.Autoplay = 200 * time.Millisecond
	})

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "All-Hands Next Thursday")
	})

	// Left untouched, the carousel advances to the next announcement.
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Benefits Enrollment Closes Friday")
	})
}

func TestPortal_logs(t *testing.T) {
	t.Parallel()

	tm := setup(t, func(cfg *Config) {
		cfg.Logging.Level = "debug"
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyEnd})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "fetched resource") &&
			strings.Contains(s, "simulated backend configured")
	})
}

func TestPortal_headerToggle(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "ⓥ")
	})

	tm.Type("m")

	// The output stream accumulates, so the header's disappearance is only
	// observable on the final frame.
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.Type("y")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
	assert.NotContains(t, tm.FinalModel(t).View(), "ⓥ")
}

func TestPortal_help(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	tm.Type("?")
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "NAVIGATION") &&
			strings.Contains(s, "close help")
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	// Help closing is only observable on the final frame.
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.Type("y")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
	assert.NotContains(t, tm.FinalModel(t).View(), "close help")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Quit atrium? (y/N):")
	})

	tm.Type("y")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func TestQuit_canceled(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Quit atrium? (y/N):")
	})

	tm.Type("n")
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "canceled quitting atrium")
	})
}
