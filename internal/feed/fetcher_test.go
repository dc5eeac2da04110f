package feed

import (
	"context"
	"testing"
	"time"

	"github.com/atriumhq/atrium/internal/logging"
	"github.com/atriumhq/atrium/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipSleep records requested delays without incurring them.
func skipSleep(delays *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		if delays != nil {
			*delays = append(*delays, d)
		}
		return nil
	}
}

func TestFetch_returnsPayloadUnchanged(t *testing.T) {
	sim := NewSimulator(SimulatorOptions{
		Base:   DefaultBase,
		Jitter: DefaultJitter,
		Sleep:  skipSleep(nil),
	})

	payload := []string{"a", "b", "c"}
	got, err := Fetch(context.Background(), sim, logging.Discard, resource.News, payload)

	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFetch_failure(t *testing.T) {
	sim := NewSimulator(SimulatorOptions{
		FailureRate: 1,
		Sleep:       skipSleep(nil),
	})

	_, err := Fetch(context.Background(), sim, logging.Discard, resource.Briefing, "payload")

	var fetchErr FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "briefing", fetchErr.Resource)
	assert.EqualError(t, err, "failed to fetch briefing data")
}

func TestFetch_delayWithinBounds(t *testing.T) {
	var delays []time.Duration
	sim := NewSimulator(SimulatorOptions{
		Base:   DefaultBase,
		Jitter: DefaultJitter,
		Seed:   42,
		Sleep:  skipSleep(&delays),
	})

	for i := 0; i < 1000; i++ {
		_, _ = Fetch(context.Background(), sim, logging.Discard, resource.Events, i)
	}

	require.Len(t, delays, 1000)
	for _, d := range delays {
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.Less(t, d, 700*time.Millisecond)
	}
}

func TestFetch_failureRateIsStatistical(t *testing.T) {
	sim := NewSimulator(SimulatorOptions{
		FailureRate: DefaultFailureRate,
		Seed:        42,
		Sleep:       skipSleep(nil),
	})

	var failures int
	for i := 0; i < 10_000; i++ {
		if _, err := Fetch(context.Background(), sim, logging.Discard, resource.News, i); err != nil {
			failures++
		}
	}

	// Each call fails independently with p=0.05; with 10k samples the
	// observed rate lands comfortably within these bounds.
	assert.Greater(t, failures, 300)
	assert.Less(t, failures, 700)
}

func TestFetch_canceledContext(t *testing.T) {
	sim := NewSimulator(SimulatorOptions{
		Base: time.Minute,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fetch(ctx, sim, logging.Discard, resource.Spotlight, "payload")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetch_logsStartAndCompletion(t *testing.T) {
	logger := logging.NewLogger(logging.Options{Level: "debug"})
	sim := NewSimulator(SimulatorOptions{Sleep: skipSleep(nil)})

	_, err := Fetch(context.Background(), sim, logger, resource.QuickLinks, "payload")
	require.NoError(t, err)

	msgs := logger.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "fetching resource", msgs[0].Message)
	assert.Equal(t, "fetched resource", msgs[1].Message)
}
