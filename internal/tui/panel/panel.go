// Package panel contains the portal's content panels, one per tab. Each panel
// fetches its payload from the feed service on initialization, shows a
// spinner while the fetch is in flight, and offers a retry once a fetch
// fails.
package panel

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/atriumhq/atrium/internal/feed"
	"github.com/atriumhq/atrium/internal/tui"
)

// Options are the common dependencies of every panel.
type Options struct {
	Ctx     context.Context
	Service *feed.Service
	Width   int
	Height  int

	// Carousel behaviour, used by the home panel only.
	Autoplay   time.Duration
	Transition time.Duration
}

var (
	labelStyle    = tui.Faint.Copy()
	headlineStyle = tui.Bold.Copy()
	categoryStyle = tui.Regular.Copy().Foreground(tui.Violet)
	errorStyle    = tui.Regular.Copy().Foreground(tui.Red)
	selectedStyle = tui.Regular.Copy().
			Background(tui.SelectedBackground).
			Foreground(tui.SelectedForeground)
)

func newSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.MiniDot))
}

func loadingView(what string, s spinner.Model) string {
	return tui.Padded.Copy().Render("Loading " + what + "… " + s.View())
}

func errorView(err error) string {
	return lipgloss.JoinVertical(lipgloss.Top,
		tui.Padded.Copy().Render(errorStyle.Render(err.Error())),
		tui.Padded.Copy().Render(labelStyle.Render("press r to retry")),
	)
}
