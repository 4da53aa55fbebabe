package engine

import (
	"sync"

	"github.com/arloliu/textfmt/directive"
	"github.com/arloliu/textfmt/internal/hash"
)

// DefaultCacheSize is the entry limit used when NewCache receives a
// non-positive size.
const DefaultCacheSize = 256

type cacheKey struct {
	sum  uint64
	mode directive.Mode
}

type cacheEntry struct {
	format  string
	program *directive.Program
}

// Cache stores compiled directive programs keyed by the xxHash64 of the
// format string plus the compile mode. Formatters and matchers that share
// a cache share compiled programs for identical format strings.
//
// Hash collisions are detected by comparing the stored format string on
// every hit. A colliding format string is compiled on the fly and never
// cached, so the first format string to claim a key keeps it.
//
// All methods are safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*cacheEntry
	limit   int
}

// NewCache creates a program cache holding up to maxEntries compiled
// programs. A non-positive maxEntries selects DefaultCacheSize. When the
// cache is full the whole map is dropped before the next insert, trading
// recompiles for bounded memory.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheSize
	}

	return &Cache{
		entries: make(map[cacheKey]*cacheEntry, maxEntries),
		limit:   maxEntries,
	}
}

// Program returns the compiled program for the format string in the given
// mode, compiling and caching it on first sight.
func (c *Cache) Program(format string, mode directive.Mode) *directive.Program {
	key := cacheKey{sum: hash.Key(format), mode: mode}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		if entry.format == format {
			return entry.program
		}
		// Hash collision, serve an uncached compile.
		return directive.Compile(format, mode)
	}

	program := directive.Compile(format, mode)

	c.mu.Lock()
	if existing, ok := c.entries[key]; ok {
		// Lost the race to another goroutine.
		c.mu.Unlock()
		if existing.format == format {
			return existing.program
		}

		return program
	}
	if len(c.entries) >= c.limit {
		c.entries = make(map[cacheKey]*cacheEntry, c.limit)
	}
	c.entries[key] = &cacheEntry{format: format, program: program}
	c.mu.Unlock()

	return program
}

// Len returns the number of cached programs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Reset drops all cached programs while keeping the configured limit.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[cacheKey]*cacheEntry, c.limit)
	c.mu.Unlock()
}
