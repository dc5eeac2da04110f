package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// step begins a navigation op and immediately resolves it.
func step(t *testing.T, nav func() bool) {
	t.Helper()
	require.True(t, nav())
}

func TestCycle_prevWrapsAround(t *testing.T) {
	c := New(4)

	step(t, c.Prev)
	c.Resolve()

	assert.Equal(t, 3, c.Current())
}

func TestCycle_nextWrapsAround(t *testing.T) {
	c := New(4)

	for i := 0; i < 4; i++ {
		step(t, c.Next)
		c.Resolve()
	}

	assert.Equal(t, 0, c.Current())
}

func TestCycle_firstAndLast(t *testing.T) {
	c := New(5)

	step(t, c.Last)
	c.Resolve()
	assert.Equal(t, 4, c.Current())

	step(t, c.First)
	c.Resolve()
	assert.Equal(t, 0, c.Current())
}

func TestCycle_goToRejectedWhileTransitioning(t *testing.T) {
	c := New(4)

	require.True(t, c.GoTo(2))
	require.True(t, c.Transitioning())

	// Navigation is rejected until the in-flight transition resolves.
	assert.False(t, c.GoTo(1))
	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.Equal(t, 0, c.Current())

	c.Resolve()
	assert.Equal(t, 2, c.Current())
	assert.False(t, c.Transitioning())

	// And accepted again afterwards.
	assert.True(t, c.GoTo(1))
}

func TestCycle_goToOutOfRange(t *testing.T) {
	c := New(4)

	assert.False(t, c.GoTo(-1))
	assert.False(t, c.GoTo(4))
	assert.Equal(t, 0, c.Current())
	assert.False(t, c.Transitioning())
}

func TestCycle_goToCurrentIndexIsNoop(t *testing.T) {
	c := New(4)

	assert.False(t, c.GoTo(0))
	assert.False(t, c.Transitioning())
}

func TestCycle_empty(t *testing.T) {
	var c Cycle

	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.False(t, c.First())
	assert.False(t, c.Last())
	assert.False(t, c.GoTo(0))
}

func TestCycle_singleItem(t *testing.T) {
	c := New(1)

	// Next from the sole item wraps around to itself, which is the current
	// index, so nothing moves.
	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.Equal(t, 0, c.Current())
}

func TestCycle_resolveWhenIdleIsNoop(t *testing.T) {
	c := New(3)

	c.Resolve()

	assert.Equal(t, 0, c.Current())
	assert.False(t, c.Transitioning())
}
