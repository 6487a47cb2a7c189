package routing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDrawer_AppliesOnlyLatest отмененный запрос не применяется, применяется только новый
func TestDrawer_AppliesOnlyLatest(t *testing.T) {
	rec := &hitRecorder{}
	server := newOSRMServer(t, rec, map[string]time.Duration{
		"73.85,18.52;73.86,18.53": 80 * time.Millisecond,
	})
	svc := newTestService(t, server.URL, 10, time.Second)
	drawer := NewDrawer(svc, newTestLogger())

	var mu sync.Mutex
	var applied []*Route
	apply := func(r *Route) {
		mu.Lock()
		applied = append(applied, r)
		mu.Unlock()
	}

	drawer.Draw(context.Background(), "incident-7", wpA, "red", apply)
	drawer.Draw(context.Background(), "incident-7", wpB, "red", apply)
	drawer.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, applied, 1)
	assert.False(t, applied[0].Fallback)
	assert.Equal(t, wpB[0], applied[0].Geometry[0])
	assert.Equal(t, wpB[1], applied[0].Geometry[len(applied[0].Geometry)-1])

	// Отмененный маршрут не попал в кэш как результат для отображения
	_, ok := svc.cache.Get(CacheKey(wpA, "red"))
	assert.False(t, ok)
}

func TestDrawer_IndependentKeys(t *testing.T) {
	rec := &hitRecorder{}
	server := newOSRMServer(t, rec, nil)
	svc := newTestService(t, server.URL, 10, time.Second)
	drawer := NewDrawer(svc, newTestLogger())

	var mu sync.Mutex
	applied := map[string]*Route{}
	drawFor := func(key string) func(*Route) {
		return func(r *Route) {
			mu.Lock()
			applied[key] = r
			mu.Unlock()
		}
	}

	drawer.Draw(context.Background(), "a", wpA, "red", drawFor("a"))
	drawer.Draw(context.Background(), "b", wpB, "red", drawFor("b"))
	drawer.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, applied, 2)
}

func TestDrawer_Cancel(t *testing.T) {
	rec := &hitRecorder{}
	server := newOSRMServer(t, rec, map[string]time.Duration{
		"73.85,18.52;73.86,18.53": 50 * time.Millisecond,
	})
	svc := newTestService(t, server.URL, 10, time.Second)
	drawer := NewDrawer(svc, newTestLogger())

	called := false
	drawer.Draw(context.Background(), "a", wpA, "red", func(*Route) { called = true })
	drawer.Cancel("a")
	drawer.Wait()

	assert.False(t, called)
}

func TestDrawer_InvalidWaypoints(t *testing.T) {
	svc := newTestService(t, "http://unused.invalid", 10, time.Second)
	drawer := NewDrawer(svc, newTestLogger())

	called := false
	drawer.Draw(context.Background(), "a", wpA[:1], "red", func(*Route) { called = true })
	drawer.Wait()

	assert.False(t, called)
}
