package newton

import "github.com/katalvlaran/decmath/dec"

// Cache is a fixed-capacity recency buffer of the last k produced values,
// newest at index 0. It answers only membership questions; iterative
// solvers use it to notice that a guess has been seen before and is about
// to repeat instead of converge.
type Cache struct {
	entries []dec.Value
}

// NewCache creates a cache of the given capacity with every slot holding
// fill. Panics with ErrBadCacheSize when size < 1.
func NewCache(size int, fill dec.Value) *Cache {
	if size < 1 {
		panic(ErrBadCacheSize)
	}
	entries := make([]dec.Value, size)
	for i := range entries {
		entries[i] = fill
	}
	return &Cache{entries: entries}
}

// Update shifts every entry one slot toward the back (the oldest falls
// off) and inserts v at the front. O(k), with k small by construction.
func (c *Cache) Update(v dec.Value) {
	for i := len(c.entries) - 1; i > 0; i-- {
		c.entries[i] = c.entries[i-1]
	}
	c.entries[0] = v
}

// Contains reports whether v numerically equals any cached entry.
func (c *Cache) Contains(v dec.Value) bool {
	for i := range c.entries {
		if c.entries[i].Equals(v) {
			return true
		}
	}
	return false
}
