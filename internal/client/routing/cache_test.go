package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldops/internal/models"
)

func line(lat float64) models.Geometry {
	return models.Geometry{{Lat: lat, Lng: 73.8}, {Lat: lat + 0.01, Lng: 73.81}}
}

func TestCacheKey(t *testing.T) {
	a := []models.Coordinate{{Lat: 18.52, Lng: 73.85}, {Lat: 18.53, Lng: 73.86}}
	reversed := []models.Coordinate{a[1], a[0]}

	assert.Equal(t, CacheKey(a, "red"), CacheKey(a, "red"))
	assert.NotEqual(t, CacheKey(a, "red"), CacheKey(a, "blue"))
	assert.NotEqual(t, CacheKey(a, "red"), CacheKey(reversed, "red"))
	assert.NotEmpty(t, CacheKey(a, ""))
}

// TestCache_EvictsOldestFirst чтение не продлевает жизнь записи: вытесняется самая старая
func TestCache_EvictsOldestFirst(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)

	stored, evicted := c.Add("k1", line(1))
	assert.True(t, stored)
	assert.Empty(t, evicted)
	_, _ = c.Add("k2", line(2))

	// Обращение к k1 не должно влиять на порядок вытеснения
	_, ok := c.Get("k1")
	require.True(t, ok)

	stored, evicted = c.Add("k3", line(3))
	assert.True(t, stored)
	assert.Equal(t, []string{"k1"}, evicted)

	_, ok = c.Get("k1")
	assert.False(t, ok)
	got, ok := c.Get("k2")
	assert.True(t, ok)
	assert.Equal(t, line(2), got)
	_, ok = c.Get("k3")
	assert.True(t, ok)

	assert.Equal(t, []string{"k2", "k3"}, c.Keys())
	assert.Equal(t, 2, c.Len())
}

func TestCache_EntriesAreImmutable(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)

	g := line(1)
	_, _ = c.Add("k1", g)
	g[0].Lat = 99

	stored, _ := c.Add("k1", line(5))
	assert.False(t, stored)

	got, ok := c.Get("k1")
	require.True(t, ok)
	assert.Equal(t, line(1), got)

	got[0].Lat = 42
	again, _ := c.Get("k1")
	assert.Equal(t, line(1), again)
}

func TestCache_Purge(t *testing.T) {
	c, err := NewCache(3)
	require.NoError(t, err)

	_, _ = c.Add("k1", line(1))
	_, _ = c.Add("k2", line(2))
	c.Purge()
	assert.Equal(t, 0, c.Len())

	stored, evicted := c.Add("k3", line(3))
	assert.True(t, stored)
	assert.Empty(t, evicted)
}

func TestNewCache_InvalidCapacity(t *testing.T) {
	_, err := NewCache(0)
	assert.Error(t, err)
}
