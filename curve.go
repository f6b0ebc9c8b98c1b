package annotate

import (
	"math"
	"sort"
)

// Bezier curve evaluation for annotation body synthesis.
// Based on kurbo patterns, adapted for Go idioms.

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Eval evaluates the line at parameter t (0 to 1).
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// QuadBez represents a quadratic Bezier curve.
// P0 is the start point, P1 the control point, P2 the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRect(q.P0, q.P2)

	// The derivative is linear, so each axis has at most one extremum:
	// t = (P0-P1) / (P0-2*P1+P2)
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)

	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			p := q.Eval(t)
			bbox = bbox.Union(NewRect(p, p))
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			p := q.Eval(t)
			bbox = bbox.Union(NewRect(p, p))
		}
	}
	return bbox
}

// CubicBez represents a cubic Bezier curve.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Deriv evaluates the derivative of the curve at parameter t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return Vec2{
		X: 3 * (d0.X*mt*mt + 2*d1.X*mt*t + d2.X*t*t),
		Y: 3 * (d0.Y*mt*mt + 2*d1.Y*mt*t + d2.Y*t*t),
	}
}

// Tangent returns the unit tangent at parameter t.
// Degenerate curves (all control points coincident) yield the
// canonical direction (1,0).
func (c CubicBez) Tangent(t float64) Vec2 {
	d := c.Deriv(t)
	if d.X*d.X+d.Y*d.Y < zeroLengthThreshold {
		// Zero derivative at a cusp or coincident endpoint; a small
		// symmetric difference usually recovers a direction.
		const eps = 1e-4
		lo := math.Max(t-eps, 0)
		hi := math.Min(t+eps, 1)
		d = c.Eval(hi).Sub(c.Eval(lo))
	}
	return d.Normalize()
}

// Extrema returns parameter values in (0, 1) where the derivative of
// either coordinate is zero, sorted ascending.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, solveQuadraticUnit(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, solveQuadraticUnit(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// solveQuadraticUnit finds real roots of a*t^2 + b*t + c = 0 that lie
// strictly inside (0, 1). Near-zero leading coefficients degrade to
// the linear case rather than dividing by zero.
func solveQuadraticUnit(a, b, c float64) []float64 {
	const tiny = 1e-12

	if math.Abs(a) < tiny {
		if math.Abs(b) < tiny {
			return nil
		}
		t := -c / b
		if t > 0 && t < 1 {
			return []float64{t}
		}
		return nil
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		t := -b / (2 * a)
		if t > 0 && t < 1 {
			return []float64{t}
		}
		return nil
	}

	// Numerically stable form: compute the larger-magnitude root first,
	// derive the other from the product of roots.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	t1 := q / a
	t2 := c / q

	var roots []float64
	if t1 > 0 && t1 < 1 {
		roots = append(roots, t1)
	}
	if t2 > 0 && t2 < 1 && t2 != t1 {
		roots = append(roots, t2)
	}
	if len(roots) == 2 && roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	return roots
}
