package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_decodesRecords(t *testing.T) {
	logger := NewLogger(Options{Level: "debug"})

	logger.Info("fetched news", "articles", "5")

	msgs := logger.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "INFO", msgs[0].Level)
	assert.Equal(t, "fetched news", msgs[0].Message)
	assert.Contains(t, msgs[0].Attributes, Attr{Key: "articles", Value: "5"})
}

func TestLogger_publishesEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := NewLogger(Options{Level: "info"})
	sub := logger.Subscribe(ctx)

	logger.Error("fetch failed", "resource", "news")

	got := <-sub
	assert.Equal(t, "fetch failed", got.Payload.Message)
	assert.Equal(t, "ERROR", got.Payload.Level)
}

func TestLogger_levelFiltersRecords(t *testing.T) {
	logger := NewLogger(Options{Level: "warn"})

	logger.Debug("too quiet")
	logger.Info("still too quiet")
	logger.Warn("loud enough")

	msgs := logger.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "loud enough", msgs[0].Message)
}

func TestLogger_serialIncrements(t *testing.T) {
	logger := NewLogger(Options{Level: "info"})

	logger.Info("one")
	logger.Info("two")

	msgs := logger.Messages()
	require.Len(t, msgs, 2)
	assert.Greater(t, msgs[1].Serial, msgs[0].Serial)
}

func TestValidLevels(t *testing.T) {
	assert.Equal(t, []string{"info", "debug", "error", "warn"}, ValidLevels())
}
