package annotate

import "sort"

// Brush represents what to paint a figure with.
// This is a sealed interface; only types in this package implement it.
//
// The annotation engine emits exactly two brush kinds: solid colors
// and linear gradients. Canvas implementations switch on the concrete
// type, or sample through ColorAt.
type Brush interface {
	// brushMarker seals the interface.
	brushMarker()

	// ColorAt returns the color at the given coordinates.
	// Solid brushes return the same color regardless of position.
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // position in the gradient, 0.0 to 1.0
	Color  RGBA    // color at this position
}

// LinearGradientBrush is a linear color transition between two points.
// Coordinates outside the start-end span take the nearest stop's color
// (pad extension).
type LinearGradientBrush struct {
	Start Point       // start point of the gradient
	End   Point       // end point of the gradient
	Stops []ColorStop // color stops, sorted by offset
}

func (*LinearGradientBrush) brushMarker() {}

// NewLinearGradientBrush creates a linear gradient from start to end.
func NewLinearGradientBrush(start, end Point) *LinearGradientBrush {
	return &LinearGradientBrush{Start: start, End: end}
}

// AddColorStop adds a color stop at the specified offset in [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// ColorAt returns the color at the given point.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	d := g.End.Sub(g.Start)
	lengthSq := d.Dot(d)
	if lengthSq == 0 {
		if len(g.Stops) == 0 {
			return Transparent
		}
		return g.Stops[0].Color
	}

	// Project the point onto the gradient line.
	t := (Pt(x, y).Sub(g.Start)).Dot(d) / lengthSq
	return g.colorAtOffset(clamp01(t))
}

// colorAtOffset interpolates the stop list at offset t in [0, 1].
func (g *LinearGradientBrush) colorAtOffset(t float64) RGBA {
	stops := g.Stops
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	if !sort.SliceIsSorted(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset }) {
		sorted := make([]ColorStop, len(stops))
		copy(sorted, stops)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
		stops = sorted
	}

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Color.Lerp(s2.Color, localT)
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
