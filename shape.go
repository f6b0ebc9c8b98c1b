package annotate

import "math"

// Closed-figure constructors for the fixed annotation shapes. These
// need no curve synthesis; they exist so the render engine has one
// geometry vocabulary for every item kind.

// RectOutline builds the closed outline of an axis-aligned rectangle.
// Degenerate rectangles (zero or negative extent) report ok=false.
func RectOutline(r Rect) (*Path, bool) {
	if r.IsEmpty() {
		return nil, false
	}
	p := NewPath()
	p.MoveTo(r.Min.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Max.Y)
	p.LineTo(r.Min.X, r.Max.Y)
	p.Close()
	return p, true
}

// ellipseArcs is the number of quadratic arcs approximating an
// ellipse. Sixteen keeps the sagitta error below a tenth of a pixel
// for screen-sized annotations.
const ellipseArcs = 16

// EllipseOutline builds the closed outline of the ellipse inscribed in
// r, approximated by quadratic arcs (the canvas boundary accepts line
// and quadratic segments only). Degenerate bounds report ok=false.
func EllipseOutline(r Rect) (*Path, bool) {
	if r.IsEmpty() {
		return nil, false
	}
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	rx := r.Width() / 2
	ry := r.Height() / 2

	step := 2 * math.Pi / ellipseArcs
	// Control points sit at the intersection of the endpoint tangents:
	// radius scaled by 1/cos(step/2).
	k := 1 / math.Cos(step/2)

	p := NewPath()
	p.MoveTo(cx+rx, cy)
	for i := 0; i < ellipseArcs; i++ {
		a0 := float64(i) * step
		a1 := a0 + step
		mid := (a0 + a1) / 2
		ctrlX := cx + rx*k*math.Cos(mid)
		ctrlY := cy + ry*k*math.Sin(mid)
		endX := cx + rx*math.Cos(a1)
		endY := cy + ry*math.Sin(a1)
		p.QuadraticTo(ctrlX, ctrlY, endX, endY)
	}
	p.Close()
	return p, true
}
