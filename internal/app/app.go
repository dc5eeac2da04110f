// Package app is the main entrypoint into the application, responsible for
// configuring and starting the portal, wiring up its services, dependency
// injection, etc.
package app

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atriumhq/atrium/internal/feed"
	"github.com/atriumhq/atrium/internal/logging"
	"github.com/atriumhq/atrium/internal/tui/top"
	"github.com/atriumhq/atrium/internal/version"
)

// Start configures and starts the portal, blocking until the user exits.
func Start(stdout, stderr io.Writer, args []string) error {
	cfg, err := Parse(stderr, args)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "atrium", version.Version)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model, logger, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model,
		// use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
		// Track mouse motion so the carousel can suspend autoplay while the
		// pointer is over it, and so tab headers are clickable.
		tea.WithMouseCellMotion(),
	)

	// Relay log events to TUI.
	logEvents := logger.Subscribe(ctx)
	go func() {
		for ev := range logEvents {
			p.Send(ev)
		}
	}()

	// Blocks until user quits
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// newApp assembles the portal: logger, feed service, and top-level model.
func newApp(ctx context.Context, cfg Config) (tea.Model, *logging.Logger, error) {
	logger := logging.NewLogger(cfg.Logging)

	// Log some info useful to the user
	logger.Info("simulated backend configured",
		"latency", cfg.Latency,
		"jitter", cfg.Jitter,
		"failure_rate", cfg.FailureRate,
	)

	svc, err := feed.NewService(feed.ServiceOptions{
		Simulator: feed.NewSimulator(feed.SimulatorOptions{
			Base:        cfg.Latency,
			Jitter:      cfg.Jitter,
			FailureRate: cfg.FailureRate,
			Seed:        int64(cfg.Seed),
		}),
		Logger: logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("loading seed data: %w", err)
	}

	model, err := top.New(top.Options{
		Ctx:        ctx,
		Service:    svc,
		Logger:     logger,
		FirstTab:   cfg.FirstTab,
		Autoplay:   cfg.Autoplay,
		Transition: cfg.Transition,
		Debug:      cfg.Debug,
	})
	if err != nil {
		return nil, nil, err
	}
	return model, logger, nil
}
