// Package cycle provides the selection state machine shared by the portal's
// tab set and carousel: one of a fixed, ordered set of items is active at a
// time, and navigation wraps around at either end.
package cycle

// Cycle tracks the active index among n items. A navigation operation begins
// a transition; until the caller resolves it, further navigation is rejected,
// guarding against rapid-fire requests corrupting the selection. Callers are
// responsible for scheduling resolution, e.g. once a visual transition has
// completed.
//
// The zero value is an empty cycle; navigation on an empty cycle is a no-op.
type Cycle struct {
	n       int
	current int
	target  int
	moving  bool
}

func New(n int) Cycle {
	return Cycle{n: n}
}

// Len returns the number of items cycled through.
func (c Cycle) Len() int { return c.n }

// Current returns the index of the active item. Until a transition is
// resolved the previously active index remains current.
func (c Cycle) Current() int { return c.current }

// Transitioning reports whether a transition is in flight.
func (c Cycle) Transitioning() bool { return c.moving }

// Target returns the index a transition is moving to. Meaningless unless
// Transitioning returns true.
func (c Cycle) Target() int { return c.target }

// GoTo begins a transition to the item at index i, reporting whether the
// transition began. Out-of-range indices, the currently active index, and
// requests made while a transition is in flight are all rejected.
func (c *Cycle) GoTo(i int) bool {
	if c.moving || i < 0 || i >= c.n || i == c.current {
		return false
	}
	c.target = i
	c.moving = true
	return true
}

// Next begins a transition to the following item, wrapping around to the
// first item after the last.
func (c *Cycle) Next() bool {
	if c.n == 0 {
		return false
	}
	return c.GoTo((c.current + 1) % c.n)
}

// Prev begins a transition to the preceding item, wrapping around to the last
// item before the first.
func (c *Cycle) Prev() bool {
	if c.n == 0 {
		return false
	}
	return c.GoTo((c.current - 1 + c.n) % c.n)
}

// First begins a transition to the first item.
func (c *Cycle) First() bool { return c.GoTo(0) }

// Last begins a transition to the last item.
func (c *Cycle) Last() bool { return c.GoTo(c.n - 1) }

// Resolve completes the in-flight transition, making its target the active
// item. Resolving an idle cycle is a no-op.
func (c *Cycle) Resolve() {
	if !c.moving {
		return
	}
	c.current = c.target
	c.moving = false
}
