package annotate

import (
	"math"
	"reflect"
	"testing"
)

func TestSmoothDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		trail []Point
	}{
		{"nil", nil},
		{"empty", []Point{}},
		{"single point", []Point{Pt(5, 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Smooth(tt.trail)
			if len(got.Samples) != 0 || got.TotalLength != 0 || got.Bend != 0 {
				t.Errorf("Smooth(%v) = %+v, want empty result", tt.trail, got)
			}
		})
	}
}

func TestSmoothTwoPoints(t *testing.T) {
	got := Smooth([]Point{Pt(0, 0), Pt(30, 40)})

	if len(got.Samples) != 2 {
		t.Fatalf("len(Samples) = %d, want 2", len(got.Samples))
	}
	if !near(got.TotalLength, 50, testEps) {
		t.Errorf("TotalLength = %v, want 50", got.TotalLength)
	}
	wantDir := V2(0.6, 0.8)
	for i, s := range got.Samples {
		if !near(s.Tangent.X, wantDir.X, testEps) || !near(s.Tangent.Y, wantDir.Y, testEps) {
			t.Errorf("sample %d tangent = %v, want %v", i, s.Tangent, wantDir)
		}
	}
	if got.Samples[0].Progress != 0 || got.Samples[1].Progress != 1 {
		t.Errorf("progress = %v, %v, want 0, 1", got.Samples[0].Progress, got.Samples[1].Progress)
	}
	if got.Bend != 0 {
		t.Errorf("Bend = %v, want 0 for straight trail", got.Bend)
	}
}

func TestSmoothPassesThroughKnots(t *testing.T) {
	trail := []Point{Pt(0, 0), Pt(50, 30), Pt(100, 0), Pt(150, -30)}
	got := Smooth(trail)

	if len(got.Samples) == 0 {
		t.Fatal("no samples")
	}
	first := got.Samples[0].Position
	last := got.Samples[len(got.Samples)-1].Position
	if !pointNear(first, trail[0], testEps) {
		t.Errorf("first sample = %v, want %v", first, trail[0])
	}
	if !pointNear(last, trail[len(trail)-1], testEps) {
		t.Errorf("last sample = %v, want %v", last, trail[len(trail)-1])
	}
}

func TestSmoothMonotoneArcLength(t *testing.T) {
	got := Smooth([]Point{Pt(0, 0), Pt(40, 60), Pt(90, 50), Pt(140, 90), Pt(200, 80)})

	prev := -1.0
	for i, s := range got.Samples {
		if s.ArcLength < prev {
			t.Fatalf("ArcLength decreased at sample %d: %v -> %v", i, prev, s.ArcLength)
		}
		prev = s.ArcLength
		if s.Progress < 0 || s.Progress > 1 {
			t.Errorf("Progress out of range at sample %d: %v", i, s.Progress)
		}
	}
	last := got.Samples[len(got.Samples)-1]
	if !near(last.ArcLength, got.TotalLength, testEps) {
		t.Errorf("final ArcLength = %v, TotalLength = %v", last.ArcLength, got.TotalLength)
	}
	if !near(last.Progress, 1, testEps) {
		t.Errorf("final Progress = %v, want 1", last.Progress)
	}
}

func TestSmoothUnitTangents(t *testing.T) {
	got := Smooth([]Point{Pt(0, 0), Pt(50, 80), Pt(120, 40), Pt(200, 100)})
	for i, s := range got.Samples {
		if l := s.Tangent.Length(); !near(l, 1, 1e-6) {
			t.Errorf("sample %d tangent length = %v, want 1", i, l)
		}
	}
}

func TestSmoothBend(t *testing.T) {
	tests := []struct {
		name     string
		trail    []Point
		wantZero bool
	}{
		{"collinear", []Point{Pt(0, 0), Pt(50, 0), Pt(100, 0)}, true},
		{"curved", []Point{Pt(0, 0), Pt(50, 40), Pt(100, 0)}, false},
		{"closed loop chord", []Point{Pt(0, 0), Pt(50, 40), Pt(0, 1e-13)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Smooth(tt.trail)
			if got.Bend < 0 {
				t.Fatalf("Bend = %v, want >= 0", got.Bend)
			}
			if tt.wantZero && got.Bend != 0 {
				t.Errorf("Bend = %v, want 0", got.Bend)
			}
			if !tt.wantZero && got.Bend == 0 {
				t.Error("Bend = 0, want > 0")
			}
		})
	}

	// The symmetric arc deviates by 40 over a chord of 100.
	got := Smooth([]Point{Pt(0, 0), Pt(50, 40), Pt(100, 0)})
	if !near(got.Bend, 0.4, testEps) {
		t.Errorf("Bend = %v, want 0.4", got.Bend)
	}
}

func TestSmoothDeterministic(t *testing.T) {
	trail := []Point{Pt(3, 7), Pt(40, 55), Pt(110, 30), Pt(180, 95)}
	a := Smooth(trail)
	b := Smooth(trail)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical trails produced different results")
	}
}

func TestSmoothFinite(t *testing.T) {
	// Repeated points make zero-length Catmull-Rom segments; the output
	// must stay finite regardless.
	got := Smooth([]Point{Pt(10, 10), Pt(10, 10), Pt(50, 50), Pt(50, 50), Pt(90, 10)})
	for i, s := range got.Samples {
		if !s.Position.IsFinite() {
			t.Fatalf("sample %d position not finite: %v", i, s.Position)
		}
		if math.IsNaN(s.Tangent.X) || math.IsNaN(s.Tangent.Y) {
			t.Fatalf("sample %d tangent NaN", i)
		}
	}
}

func TestSmoothPositions(t *testing.T) {
	got := Smooth([]Point{Pt(0, 0), Pt(50, 50), Pt(100, 0)})
	pts := got.Positions()
	if len(pts) != len(got.Samples) {
		t.Fatalf("len(Positions) = %d, want %d", len(pts), len(got.Samples))
	}
	for i := range pts {
		if pts[i] != got.Samples[i].Position {
			t.Errorf("Positions[%d] = %v, want %v", i, pts[i], got.Samples[i].Position)
		}
	}
}
