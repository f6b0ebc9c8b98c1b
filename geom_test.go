package annotate

import (
	"math"
	"testing"
)

const testEps = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func pointNear(p, q Point, tol float64) bool {
	return near(p.X, q.X, tol) && near(p.Y, q.Y, tol)
}

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)

	if got := p.Add(V2(1, -2)); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != V2(2, 3) {
		t.Errorf("Sub = %v, want (2, 3)", got)
	}
	if got := Pt(0, 0).Distance(p); !near(got, 5, testEps) {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Pt(0, 0).Lerp(Pt(10, 20), 0.25); got != Pt(2.5, 5) {
		t.Errorf("Lerp = %v, want (2.5, 5)", got)
	}
	if got := Pt(0, 0).Midpoint(Pt(10, 6)); got != Pt(5, 3) {
		t.Errorf("Midpoint = %v, want (5, 3)", got)
	}
}

func TestPointIsFinite(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"zero", Pt(0, 0), true},
		{"regular", Pt(-12.5, 8e10), true},
		{"nan x", Pt(math.NaN(), 0), false},
		{"inf y", Pt(0, math.Inf(1)), false},
		{"neg inf", Pt(math.Inf(-1), math.NaN()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsFinite(); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"unit x", V2(5, 0), V2(1, 0)},
		{"diagonal", V2(3, 3), V2(math.Sqrt2/2, math.Sqrt2/2)},
		{"negative y", V2(0, -2), V2(0, -1)},
		{"zero falls back to unit x", V2(0, 0), V2(1, 0)},
		{"below threshold falls back", V2(1e-13, -1e-13), V2(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if !near(got.X, tt.want.X, testEps) || !near(got.Y, tt.want.Y, testEps) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2Ops(t *testing.T) {
	v := V2(2, 3)

	if got := v.Dot(V2(4, -1)); !near(got, 5, testEps) {
		t.Errorf("Dot = %v, want 5", got)
	}
	if got := v.Cross(V2(4, -1)); !near(got, -14, testEps) {
		t.Errorf("Cross = %v, want -14", got)
	}
	if got := v.Perp(); got != V2(-3, 2) {
		t.Errorf("Perp = %v, want (-3, 2)", got)
	}
	if got := v.Perp().Dot(v); !near(got, 0, testEps) {
		t.Errorf("Perp not orthogonal, dot = %v", got)
	}
	if got := V2(3, 4).Length(); !near(got, 5, testEps) {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := v.Neg(); got != V2(-2, -3) {
		t.Errorf("Neg = %v, want (-2, -3)", got)
	}
}

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(Pt(10, 2), Pt(-3, 8))
	want := Rect{Min: Pt(-3, 2), Max: Pt(10, 8)}
	if r != want {
		t.Errorf("NewRect = %v, want %v", r, want)
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero rect", Rect{}, true},
		{"zero width", RectXYWH(5, 5, 0, 10), true},
		{"zero height", RectXYWH(5, 5, 10, 0), true},
		{"regular", RectXYWH(0, 0, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := RectXYWH(0, 0, 10, 10)
	b := RectXYWH(20, -5, 10, 10)
	got := a.Union(b)
	want := Rect{Min: Pt(0, -5), Max: Pt(30, 10)}
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestRectIntersects(t *testing.T) {
	base := RectXYWH(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", RectXYWH(5, 5, 10, 10), true},
		{"contained", RectXYWH(2, 2, 4, 4), true},
		{"touching edge", RectXYWH(10, 0, 5, 10), true},
		{"touching corner", RectXYWH(10, 10, 5, 5), true},
		{"disjoint", RectXYWH(11, 11, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := RectXYWH(0, 0, 10, 10)
	if !r.Contains(Pt(5, 5)) {
		t.Error("Contains(5, 5) = false, want true")
	}
	if !r.Contains(Pt(10, 10)) {
		t.Error("Contains(10, 10) = false, want true")
	}
	if r.Contains(Pt(10.001, 5)) {
		t.Error("Contains(10.001, 5) = true, want false")
	}
}

func TestRectInflateTranslate(t *testing.T) {
	r := RectXYWH(10, 10, 20, 20)

	got := r.Inflate(5)
	want := Rect{Min: Pt(5, 5), Max: Pt(35, 35)}
	if got != want {
		t.Errorf("Inflate(5) = %v, want %v", got, want)
	}

	got = r.Translate(V2(-10, 5))
	want = Rect{Min: Pt(0, 15), Max: Pt(20, 35)}
	if got != want {
		t.Errorf("Translate = %v, want %v", got, want)
	}
}
