package layout

import "github.com/flux-ui/flux/pkg/graphics"

// SizeCache memoizes constraints -> size for one node across update cycles.
//
// It keeps two generations. At the first access in a new cycle the current
// map becomes the previous one. A hit in the previous generation is promoted,
// so entries used every cycle survive indefinitely while entries unused for a
// whole cycle are dropped at the next rotation.
type SizeCache struct {
	cycle    uint64
	current  map[Constraints]graphics.Size
	previous map[Constraints]graphics.Size

	// Hits and Misses count lookups since the last Invalidate.
	Hits   int
	Misses int
}

func (c *SizeCache) rotate(cycle uint64) {
	if c.cycle == cycle {
		return
	}
	c.cycle = cycle
	c.previous = c.current
	c.current = nil
}

// Lookup returns the cached size for k in the given cycle.
func (c *SizeCache) Lookup(cycle uint64, k Constraints) (graphics.Size, bool) {
	c.rotate(cycle)
	if s, ok := c.current[k]; ok {
		c.Hits++
		return s, true
	}
	if s, ok := c.previous[k]; ok {
		c.Hits++
		c.put(k, s)
		return s, true
	}
	c.Misses++
	return graphics.Size{}, false
}

// Store records size for k in the given cycle.
func (c *SizeCache) Store(cycle uint64, k Constraints, size graphics.Size) {
	c.rotate(cycle)
	c.put(k, size)
}

func (c *SizeCache) put(k Constraints, size graphics.Size) {
	if c.current == nil {
		c.current = make(map[Constraints]graphics.Size)
	}
	c.current[k] = size
}

// Len returns the number of entries across both generations.
func (c *SizeCache) Len() int {
	n := len(c.current)
	for k := range c.previous {
		if _, ok := c.current[k]; !ok {
			n++
		}
	}
	return n
}

// Invalidate drops every entry. Called when the node's view or children
// changed.
func (c *SizeCache) Invalidate() {
	c.current = nil
	c.previous = nil
	c.Hits = 0
	c.Misses = 0
}
