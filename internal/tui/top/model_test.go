package top

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/internal/feed"
	"github.com/atriumhq/atrium/internal/logging"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func setup(t *testing.T, firstTab string) model {
	t.Helper()

	logger := logging.NewLogger(logging.Options{Level: "info"})
	svc, err := feed.NewService(feed.ServiceOptions{
		Simulator: feed.NewSimulator(feed.SimulatorOptions{Seed: 1}),
		Logger:    logger,
	})
	require.NoError(t, err)

	m, err := New(Options{
		Ctx:      context.Background(),
		Service:  svc,
		Logger:   logger,
		FirstTab: firstTab,
	})
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	return updated.(model)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()

	updated, _ := m.Update(msg)
	return updated.(model)
}

func TestModel_keysReachFocusedSearchInput(t *testing.T) {
	m := setup(t, "News")

	// Focus the news search input, then type characters that double as global
	// bindings. They must land in the input, not collapse the header or open
	// help.
	m = press(t, m, keyPress('/'))
	m = press(t, m, keyPress('m'))
	m = press(t, m, keyPress('?'))

	view := m.View()
	assert.Contains(t, view, "ⓥ")
	assert.Contains(t, view, "search: m?")
	assert.NotContains(t, view, "close help")
}

func TestModel_globalKeysResumeAfterSearch(t *testing.T) {
	m := setup(t, "News")

	// Cancel the search with <esc>; 'm' reverts to collapsing the header.
	m = press(t, m, keyPress('/'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = press(t, m, keyPress('m'))

	assert.NotContains(t, m.View(), "ⓥ")
}

func TestModel_quitPromptWhileSearching(t *testing.T) {
	m := setup(t, "News")

	// ctrl-c keeps its meaning even while the search input has focus.
	m = press(t, m, keyPress('/'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Contains(t, m.View(), "Quit atrium? (y/N):")
}
