package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPager(t *testing.T) {
	p := NewPager([]string{"a", "b", "c"})

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, "a", p.Current())
	assert.Equal(t, "1/3", p.Label())

	assert.False(t, p.Prev())
	assert.Equal(t, "a", p.Current())

	assert.True(t, p.Next())
	assert.True(t, p.Next())
	assert.Equal(t, "c", p.Current())
	assert.Equal(t, "3/3", p.Label())

	assert.False(t, p.Next())
	assert.Equal(t, 2, p.Index())

	assert.True(t, p.Prev())
	assert.Equal(t, "b", p.Current())
}

func TestPager_Empty(t *testing.T) {
	p := NewPager(nil)

	assert.Equal(t, "", p.Current())
	assert.Equal(t, "0/0", p.Label())
	assert.False(t, p.Next())
	assert.False(t, p.Prev())
}
