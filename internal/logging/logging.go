// Package logging wraps slog, re-publishing log records as events for the
// TUI to render in its log panel.
package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/atriumhq/atrium/internal/pubsub"
	"github.com/atriumhq/atrium/internal/resource"
	"github.com/go-logfmt/logfmt"
	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to.
	AdditionalWriters []io.Writer
}

// Logger wraps slog, emitting each log record as an event in addition to
// passing it to any additional writers.
type Logger struct {
	logger *slog.Logger

	broker *pubsub.Broker[Message]

	mu       sync.Mutex
	messages []Message
	serial   uint
}

// NewLogger constructs a slog-backed logger with the appropriate log level.
func NewLogger(opts Options) *Logger {
	logger := &Logger{}
	logger.broker = pubsub.NewBroker[Message](logger)

	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, (*writer)(logger))...),
		&slog.HandlerOptions{
			Level: levels[opts.Level],
		},
	)
	logger.logger = slog.New(handler)

	return logger
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// Messages lists the log messages received thus far.
func (l *Logger) Messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.messages)
}

// Subscribe to log messages.
func (l *Logger) Subscribe(ctx context.Context) <-chan resource.Event[Message] {
	return l.broker.Subscribe(ctx)
}

// writer decodes the logfmt output of the slog handler back into structured
// messages and publishes them as events.
type writer Logger

func (w *writer) Write(p []byte) (int, error) {
	l := (*Logger)(w)

	var msgs []Message
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		msgs = append(msgs, msg)
	}
	if d.Err() != nil {
		return 0, d.Err()
	}

	l.mu.Lock()
	for i := range msgs {
		msgs[i].Serial = l.serial
		l.serial++
	}
	l.messages = append(l.messages, msgs...)
	l.mu.Unlock()

	for _, msg := range msgs {
		l.broker.Publish(resource.CreatedEvent, msg)
	}
	return len(p), nil
}
