package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_String(t *testing.T) {
	id := NewID(News)

	assert.Regexp(t, `^news-[0-9a-f]{8}$`, id.String())
}

func TestID_unique(t *testing.T) {
	assert.NotEqual(t, NewID(Briefing), NewID(Briefing))
}
