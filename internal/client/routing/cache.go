package routing

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/iudanet/fieldops/internal/models"
)

// DefaultCacheCapacity количество маршрутов в кэше по умолчанию
const DefaultCacheCapacity = 100

// CacheKey derives the cache key from the ordered waypoints and the style.
// The same route drawn in two styles gets two keys.
func CacheKey(waypoints []models.Coordinate, style string) string {
	var b strings.Builder
	for i, c := range waypoints {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatFloat(c.Lat, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(c.Lng, 'f', -1, 64))
	}
	b.WriteByte('|')
	b.WriteString(style)

	return strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}

// Cache is a bounded geometry cache with FIFO eviction: reads never
// refresh an entry, so the oldest insertion is always evicted first.
// Entries are immutable once stored.
type Cache struct {
	entries *lru.Cache
	evicted []string // ключи, вытесненные последним Add
	mu      sync.Mutex
}

// NewCache creates a cache holding at most capacity geometries.
func NewCache(capacity int) (*Cache, error) {
	c := &Cache{}
	entries, err := lru.NewWithEvict(capacity, func(key, _ interface{}) {
		c.evicted = append(c.evicted, key.(string))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create route cache: %w", err)
	}
	c.entries = entries
	return c, nil
}

// Get returns a copy of the cached geometry.
func (c *Cache) Get(key string) (models.Geometry, bool) {
	// Peek не меняет порядок вытеснения
	v, ok := c.entries.Peek(key)
	if !ok {
		return nil, false
	}
	return v.(models.Geometry).Clone(), true
}

// Add stores geometry under key unless the key is already present.
// It reports whether the entry was stored and which keys were evicted.
func (c *Cache) Add(key string, geometry models.Geometry) (bool, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries.Contains(key) {
		return false, nil
	}

	c.evicted = nil
	c.entries.Add(key, geometry.Clone())

	evicted := c.evicted
	c.evicted = nil
	return true, evicted
}

// Keys returns the cached keys from oldest to newest.
func (c *Cache) Keys() []string {
	raw := c.entries.Keys()
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, k.(string))
	}
	return keys
}

// Len возвращает количество маршрутов в кэше
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge очищает кэш
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
	c.evicted = nil
}
