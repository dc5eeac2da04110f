// Package logs renders the portal's own log messages in a tab, newest first.
package logs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atriumhq/atrium/internal/logging"
	"github.com/atriumhq/atrium/internal/resource"
	"github.com/atriumhq/atrium/internal/tui"
	"github.com/atriumhq/atrium/internal/tui/keys"
)

const timeFormat = "2006-01-02T15:04:05.000"

type bulkInsertMsg []logging.Message

// Model lists log messages in a scrollable viewport.
type Model struct {
	logger *logging.Logger

	messages []logging.Message
	viewport tui.Viewport
}

func New(logger *logging.Logger, width, height int) Model {
	return Model{
		logger: logger,
		viewport: tui.NewViewport(tui.ViewportOptions{
			Width:  width,
			Height: height,
		}),
	}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return bulkInsertMsg(m.logger.Messages())
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bulkInsertMsg:
		m.messages = append(m.messages, msg...)
		m.render()
		return m, nil
	case resource.Event[logging.Message]:
		if msg.Type == resource.CreatedEvent {
			m.messages = append(m.messages, msg.Payload)
			m.render()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.viewport.SetDimensions(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// render rebuilds the viewport content, newest message first.
func (m *Model) render() {
	lines := make([]string, len(m.messages))
	for i, msg := range m.messages {
		lines[len(m.messages)-1-i] = renderMessage(msg)
	}
	// Rendering errors cannot arise: content is plain text, not json.
	_ = m.viewport.SetContent([]byte(strings.Join(lines, "\n")))
}

func renderMessage(msg logging.Message) string {
	var levelColor lipgloss.TerminalColor
	switch msg.Level {
	case "ERROR":
		levelColor = tui.ErrorLogLevel
	case "WARN":
		levelColor = tui.WarnLogLevel
	case "DEBUG":
		levelColor = tui.DebugLogLevel
	case "INFO":
		levelColor = tui.InfoLogLevel
	}

	var b strings.Builder
	b.WriteString(tui.Faint.Render(msg.Time.Format(timeFormat)))
	b.WriteRune(' ')
	b.WriteString(tui.Bold.Copy().Foreground(levelColor).Render(fmt.Sprintf("%-5s", msg.Level)))
	b.WriteRune(' ')
	b.WriteString(msg.Message)
	b.WriteRune(' ')
	for _, attr := range msg.Attributes {
		b.WriteString(tui.Regular.Copy().Faint(true).Render(attr.Key + "="))
		b.WriteString(tui.Regular.Copy().Render(attr.Value + " "))
	}
	return b.String()
}

func (m Model) View() string {
	return m.viewport.View()
}

// TabStatus reports the message count alongside the tab title.
func (m Model) TabStatus() string {
	return fmt.Sprintf("(%d)", len(m.messages))
}

func (m Model) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.Navigation.LineUp,
		keys.Navigation.LineDown,
	}
}
