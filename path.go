package annotate

// PathElement represents a single element in a path.
//
// Annotation geometry is handed to the canvas as closed figures made
// of line and quadratic Bezier segments only, so the element set is
// deliberately small.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector outline.
type Path struct {
	elements []PathElement
	start    Point // starting point of current subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve to (x, y) with control
// point (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// Close closes the current subpath by connecting back to its start.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path, preserving capacity.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path contains no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// IsClosed reports whether the path is non-empty and every subpath is
// explicitly closed.
func (p *Path) IsClosed() bool {
	if len(p.elements) == 0 {
		return false
	}
	open := false
	for _, elem := range p.elements {
		switch elem.(type) {
		case MoveTo:
			if open {
				return false
			}
			open = true
		case Close:
			open = false
		default:
			if !open {
				return false
			}
		}
	}
	return !open
}

// Bounds returns the axis-aligned bounding box of the path.
// Quadratic segments contribute their tight curve bounds.
// An empty path yields the empty rectangle at the origin.
func (p *Path) Bounds() Rect {
	var bounds Rect
	var prev Point
	first := true

	grow := func(r Rect) {
		if first {
			bounds = r
			first = false
		} else {
			bounds = bounds.Union(r)
		}
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(NewRect(e.Point, e.Point))
			prev = e.Point
		case LineTo:
			grow(NewRect(prev, e.Point))
			prev = e.Point
		case QuadTo:
			grow(QuadBez{P0: prev, P1: e.Control, P2: e.Point}.BoundingBox())
			prev = e.Point
		case Close:
		}
	}
	return bounds
}

// HasNaN reports whether any coordinate in the path is NaN or infinite.
func (p *Path) HasNaN() bool {
	bad := func(pt Point) bool {
		return !pt.IsFinite()
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if bad(e.Point) {
				return true
			}
		case LineTo:
			if bad(e.Point) {
				return true
			}
		case QuadTo:
			if bad(e.Control) || bad(e.Point) {
				return true
			}
		}
	}
	return false
}

// Translate returns a copy of the path displaced by v.
func (p *Path) Translate(v Vec2) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := e.Point.Add(v)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := e.Point.Add(v)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			c := e.Control.Add(v)
			pt := e.Point.Add(v)
			result.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
