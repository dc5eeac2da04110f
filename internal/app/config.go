package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"

	"github.com/atriumhq/atrium/internal/feed"
	"github.com/atriumhq/atrium/internal/logging"
)

type Config struct {
	FirstTab   string
	Autoplay   time.Duration
	Transition time.Duration

	// Simulated backend characteristics.
	Latency     time.Duration
	Jitter      time.Duration
	FailureRate float64
	Seed        int

	Debug   bool
	Logging logging.Options

	Version bool
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func Parse(stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".atrium.yaml")

	fs := ff.NewFlagSet("atrium")
	fs.StringVar(&cfg.FirstTab, 'f', "first-tab", "Home", "The tab that is active on startup.")
	fs.DurationVar(&cfg.Autoplay, 0, "autoplay", 5*time.Second, "Interval at which the announcement carousel advances. Zero disables autoplay.")
	fs.DurationVar(&cfg.Transition, 0, "transition", 200*time.Millisecond, "How long a tab or slide switch takes to settle.")
	fs.DurationVar(&cfg.Latency, 0, "latency", feed.DefaultBase, "Minimum simulated backend latency.")
	fs.DurationVar(&cfg.Jitter, 0, "jitter", feed.DefaultJitter, "Upper bound on random latency added to the minimum.")
	fs.Float64Var(&cfg.FailureRate, 0, "failure-rate", feed.DefaultFailureRate, "Probability, per fetch, that the simulated backend fails.")
	fs.IntVar(&cfg.Seed, 0, "seed", 0, "Seed for the simulated backend's random source. Zero seeds from the current time.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.Logging.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("ATRIUM"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}

	if cfg.FailureRate < 0 || cfg.FailureRate > 1 {
		return Config{}, fmt.Errorf("failure-rate must be between 0 and 1: %f", cfg.FailureRate)
	}

	return cfg, nil
}
