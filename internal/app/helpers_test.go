package app

import (
	"context"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/internal/logging"
)

func init() {
	// Strip colors from rendered output so tests can match on plain strings.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func setup(t *testing.T, opts ...func(*Config)) *teatest.TestModel {
	t.Helper()

	// Cancel context once test finishes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	// Zero latency and failures keep tests deterministic; individual tests
	// override what they exercise.
	cfg := Config{
		FirstTab: "Home",
		Seed:     1,
		Logging: logging.Options{
			Level: "info",
			AdditionalWriters: []io.Writer{
				&testLogger{t},
			},
		},
	}
	for _, fn := range opts {
		fn(&cfg)
	}

	m, logger, err := newApp(ctx, cfg)
	require.NoError(t, err)

	tm := teatest.NewTestModel(
		t,
		m,
		teatest.WithInitialTermSize(100, 50),
	)

	// Relay log events to TUI.
	logEvents := logger.Subscribe(ctx)
	go func() {
		for ev := range logEvents {
			tm.Send(ev)
		}
	}()

	t.Cleanup(func() {
		tm.Quit()
	})
	return tm
}

// testLogger relays log records to the go test logger
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Write(b []byte) (int, error) {
	l.t.Helper()

	l.t.Log(string(b))
	return len(b), nil
}

func waitFor(t *testing.T, tm *teatest.TestModel, cond func(s string) bool) {
	t.Helper()

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return cond(string(b))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*10),
	)
}

func matchPattern(t *testing.T, pattern string, s string) bool {
	matched, err := regexp.MatchString(pattern, s)
	require.NoError(t, err)
	return matched
}
