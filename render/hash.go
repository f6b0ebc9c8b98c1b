package render

import (
	"math"

	"github.com/gogpu/annotate"
)

// Content-version hashing. A 64-bit FNV-1a accumulator fingerprints an
// item's geometry-relevant fields and style; any change produces a
// different hash with overwhelming probability, which is all the cache
// needs. Speed matters more than collision resistance here, so no
// cryptographic hash.

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// versionHash accumulates field values into an FNV-1a style mix.
type versionHash uint64

func newVersionHash() versionHash {
	return versionHash(fnvOffset)
}

func (h versionHash) mix(v uint64) versionHash {
	h ^= versionHash(v)
	h *= fnvPrime
	return h
}

func (h versionHash) float(f float64) versionHash {
	return h.mix(math.Float64bits(f))
}

func (h versionHash) point(p annotate.Point) versionHash {
	return h.float(p.X).float(p.Y)
}

func (h versionHash) color(c annotate.RGBA) versionHash {
	return h.float(c.R).float(c.G).float(c.B).float(c.A)
}

func (h versionHash) boolean(b bool) versionHash {
	if b {
		return h.mix(1)
	}
	return h.mix(0)
}

// hashItem fingerprints the fields whose change must invalidate cached
// geometry: the item kind, its style, and its kind-specific geometry.
// Visibility, z-order and selection are deliberately excluded; they
// affect attachment, not geometry.
func hashItem(item Item) uint64 {
	h := newVersionHash().mix(uint64(item.Kind()))

	s := item.Style()
	h = h.color(s.Stroke).float(s.StrokeWidth).float(s.Opacity).color(s.Fill).boolean(s.Filled)

	switch it := item.(type) {
	case ArrowItem:
		start, end, trail := it.Arrow()
		h = h.point(start).point(end).mix(uint64(len(trail)))
		for _, p := range trail {
			h = h.point(p)
		}
	case BoxItem:
		box := it.Box()
		h = h.point(box.Min).point(box.Max)
	default:
		b := item.Bounds()
		h = h.point(b.Min).point(b.Max)
	}
	return uint64(h)
}
