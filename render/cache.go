package render

import "github.com/gogpu/annotate"

// cacheEntry holds the built geometry for one item, valid while the
// item's content-version hash still matches. Entries are derived
// state: dropping one costs a rebuild, never correctness.
type cacheEntry struct {
	hash         uint64
	geometry     *annotate.Path
	bounds       annotate.Rect
	fill         annotate.Brush
	stroke       annotate.Brush
	strokeWidth  float64
	shadowFill   annotate.Brush
	shadowOffset annotate.Vec2
	hasShadow    bool
}

// geometryCache maps item identity to its cached geometry.
type geometryCache struct {
	entries map[uint64]*cacheEntry
}

func newGeometryCache() *geometryCache {
	return &geometryCache{entries: make(map[uint64]*cacheEntry)}
}

// Lookup returns the entry for id only if its hash matches the fresh
// content-version hash.
func (c *geometryCache) Lookup(id, hash uint64) (*cacheEntry, bool) {
	entry, ok := c.entries[id]
	if !ok || entry.hash != hash {
		return nil, false
	}
	return entry, true
}

// Bounds returns the cached geometry bounds for id, which are tighter
// than an item's own conservative estimate.
func (c *geometryCache) Bounds(id uint64) (annotate.Rect, bool) {
	entry, ok := c.entries[id]
	if !ok {
		return annotate.Rect{}, false
	}
	return entry.bounds, true
}

// Store replaces the entry for id.
func (c *geometryCache) Store(id uint64, entry *cacheEntry) {
	c.entries[id] = entry
}

// Remove drops the entry for id, forcing a rebuild on next render.
func (c *geometryCache) Remove(id uint64) {
	delete(c.entries, id)
}

// Clear drops every entry.
func (c *geometryCache) Clear() {
	clear(c.entries)
}

// Len reports the number of cached entries.
func (c *geometryCache) Len() int {
	return len(c.entries)
}
