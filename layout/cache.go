package layout

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dshills/gridterm/core"
)

// DefaultCacheSize is the number of (layout, area) results kept memoized.
// Screens rarely cycle through more than a handful of distinct layouts
// between resizes.
const DefaultCacheSize = 16

// splitCache memoizes Split results with LRU eviction. The solver is pure,
// so a hit is always valid for identical inputs.
type splitCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	maxSize int
}

type cacheEntry struct {
	rects      []core.Rect
	lastAccess time.Time
}

var defaultCache = newSplitCache(DefaultCacheSize)

// newSplitCache creates a cache holding at most maxSize entries.
func newSplitCache(maxSize int) *splitCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &splitCache{
		entries: make(map[string]*cacheEntry),
		maxSize: maxSize,
	}
}

// InitCache replaces the shared memoization cache with one of the given
// size. Call it before the first Split; an existing cache is discarded.
func InitCache(size int) {
	defaultCache = newSplitCache(size)
}

// cacheKey builds a deterministic key from every input that affects solve.
func cacheKey(l Layout, area core.Rect) string {
	var b strings.Builder
	b.WriteString(area.String())
	b.WriteByte('|')
	b.WriteString(l.direction.String())
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(l.margin))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(l.vmargin))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(l.spacing))
	for _, c := range l.constraints {
		b.WriteByte('|')
		b.WriteString(c.String())
	}
	return b.String()
}

// get returns the cached result for the given inputs, if present. The
// result is a copy; callers are free to mutate it.
func (c *splitCache) get(l Layout, area core.Rect) ([]core.Rect, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[cacheKey(l, area)]
	if !ok {
		return nil, false
	}
	entry.lastAccess = time.Now()
	return cloneRects(entry.rects), true
}

// put stores a result, evicting the least recently used entry when full.
// The stored slice is a copy so later writes through the caller's slice
// cannot reach the cache.
func (c *splitCache) put(l Layout, area core.Rect, rects []core.Rect) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(l, area)
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = &cacheEntry{rects: cloneRects(rects), lastAccess: time.Now()}
}

func cloneRects(rects []core.Rect) []core.Rect {
	out := make([]core.Rect, len(rects))
	copy(out, rects)
	return out
}

// evictOldest removes the entry with the oldest access time.
// Called with the lock held.
func (c *splitCache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	first := true
	for key, entry := range c.entries {
		if first || entry.lastAccess.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.lastAccess
			first = false
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// len returns the number of cached entries.
func (c *splitCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
