package render

import "github.com/gogpu/annotate"

// Selection adornments: eight square resize handles on the corners and
// edge midpoints, plus a dashed outline around the item bounds. Both
// are rebuilt on every attach; they are cheap and depend on selection
// state, which the geometry cache deliberately ignores.

const (
	handleSize    = 6.0
	dashLength    = 4.0
	dashGapLength = 4.0
)

// handleAnchors returns the eight handle centers of bounds in
// clockwise order from the top-left corner.
func handleAnchors(b annotate.Rect) [8]annotate.Point {
	cx := (b.Min.X + b.Max.X) / 2
	cy := (b.Min.Y + b.Max.Y) / 2
	return [8]annotate.Point{
		{X: b.Min.X, Y: b.Min.Y},
		{X: cx, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: cy},
		{X: b.Max.X, Y: b.Max.Y},
		{X: cx, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
		{X: b.Min.X, Y: cy},
	}
}

// handlePath builds one path containing all eight handle squares.
func handlePath(b annotate.Rect) *annotate.Path {
	p := annotate.NewPath()
	half := handleSize / 2
	for _, c := range handleAnchors(b) {
		p.MoveTo(c.X-half, c.Y-half)
		p.LineTo(c.X+half, c.Y-half)
		p.LineTo(c.X+half, c.Y+half)
		p.LineTo(c.X-half, c.Y+half)
		p.Close()
	}
	return p
}

// dashedOutline builds the dashed selection rectangle as explicit
// short line segments; the canvas boundary has no dash primitive.
func dashedOutline(b annotate.Rect) *annotate.Path {
	p := annotate.NewPath()
	corners := [4]annotate.Point{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	}
	for i := range corners {
		dashEdge(p, corners[i], corners[(i+1)%4])
	}
	return p
}

// dashEdge emits on/off dashes along the segment from a to b.
func dashEdge(p *annotate.Path, a, b annotate.Point) {
	length := a.Distance(b)
	if length == 0 {
		return
	}
	dir := b.Sub(a).Normalize()
	period := dashLength + dashGapLength

	for pos := 0.0; pos < length; pos += period {
		from := a.Add(dir.Mul(pos))
		to := a.Add(dir.Mul(min(pos+dashLength, length)))
		p.MoveTo(from.X, from.Y)
		p.LineTo(to.X, to.Y)
	}
}
