package feed

import (
	"context"
	"fmt"

	"github.com/atriumhq/atrium/internal/logging"
	"github.com/atriumhq/atrium/internal/resource"
)

// FetchError signals that a simulated fetch failed. It is the only error kind
// the mock backend produces; callers decide whether to display a fallback or
// retry.
type FetchError struct {
	// Resource names the resource whose fetch failed.
	Resource string
}

func (e FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s data", e.Resource)
}

// Fetch simulates retrieving the named resource's payload from a backend: it
// suspends the caller for the simulator's randomized delay and then either
// fails, at the simulator's failure rate, or returns the payload unchanged.
// Each call is independent; there is no retry or caching. The delay can only
// be cut short by canceling the context.
func Fetch[T any](ctx context.Context, sim *Simulator, logger logging.Interface, kind resource.Kind, payload T) (T, error) {
	var zero T

	req := resource.NewID(kind)
	delay, fail := sim.draw()

	logger.Debug("fetching resource", "req", req, "delay", delay)

	if err := sim.sleep(ctx, delay); err != nil {
		logger.Error("fetch interrupted", "req", req, "error", err)
		return zero, err
	}
	if fail {
		err := FetchError{Resource: kind.String()}
		logger.Error("fetch failed", "req", req, "error", err)
		return zero, err
	}

	logger.Debug("fetched resource", "req", req)
	return payload, nil
}
