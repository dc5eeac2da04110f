package feed

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Production latency and failure characteristics of the simulated backend.
const (
	DefaultBase        = 500 * time.Millisecond
	DefaultJitter      = 200 * time.Millisecond
	DefaultFailureRate = 0.05
)

// Simulator emulates the latency and failure characteristics of a real
// backend. Every fetch suspends for the base latency plus a uniformly random
// portion of the jitter, and independently fails at the configured rate.
type Simulator struct {
	base        time.Duration
	jitter      time.Duration
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand

	sleep func(context.Context, time.Duration) error
}

type SimulatorOptions struct {
	// Base is the minimum latency of a fetch.
	Base time.Duration
	// Jitter is the upper bound on the random latency added to Base.
	Jitter time.Duration
	// FailureRate is the probability, per call, that a fetch fails.
	FailureRate float64
	// Seed seeds the random source. Zero means seed from the current time.
	Seed int64
	// Sleep overrides how the simulator suspends the caller. Intended for
	// tests wanting to skip or record the delay.
	Sleep func(context.Context, time.Duration) error
}

func NewSimulator(opts SimulatorOptions) *Simulator {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = wait
	}
	return &Simulator{
		base:        opts.Base,
		jitter:      opts.Jitter,
		failureRate: opts.FailureRate,
		rng:         rand.New(rand.NewSource(seed)),
		sleep:       sleep,
	}
}

// draw determines the fate of one fetch: its delay, and whether it fails.
// Fetches run concurrently off the event loop so access to the random source
// is serialized.
func (s *Simulator) draw() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delay := s.base
	if s.jitter > 0 {
		delay += time.Duration(s.rng.Int63n(int64(s.jitter)))
	}
	return delay, s.rng.Float64() < s.failureRate
}

// wait blocks for the given duration or until the context is canceled.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
