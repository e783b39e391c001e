package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFixed(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	c := NewFixed(at)
	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}

func TestNewSystem_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	c := NewSystem(loc)
	assert.Equal(t, loc, c.Now().Location())

	assert.Equal(t, time.UTC, NewSystem(nil).Now().Location())
}
