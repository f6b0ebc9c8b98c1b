package render

import "github.com/gogpu/annotate"

// mergeDirty coalesces dirty rectangles: while any two rectangles
// overlap or touch, they are replaced by their union. The result is a
// set of disjoint regions, so each item is bounds-tested against as
// few rectangles as possible and never re-rendered twice.
func mergeDirty(rects []annotate.Rect) []annotate.Rect {
	merged := make([]annotate.Rect, 0, len(rects))
	for _, r := range rects {
		if r.IsEmpty() {
			continue
		}
		merged = append(merged, r)
	}

	for {
		combined := false
		for i := 0; i < len(merged) && !combined; i++ {
			for j := i + 1; j < len(merged); j++ {
				if merged[i].Intersects(merged[j]) {
					merged[i] = merged[i].Union(merged[j])
					merged[j] = merged[len(merged)-1]
					merged = merged[:len(merged)-1]
					combined = true
					break
				}
			}
		}
		if !combined {
			return merged
		}
	}
}

// intersectsAny reports whether bounds overlaps at least one region.
func intersectsAny(bounds annotate.Rect, regions []annotate.Rect) bool {
	for _, r := range regions {
		if bounds.Intersects(r) {
			return true
		}
	}
	return false
}
