package annotate

import (
	"reflect"
	"testing"
)

func testProfileParams() ProfileParams {
	return ProfileParams{
		NeckWidth:     4,
		TotalLength:   300,
		NeckRatio:     0.7,
		TailNeckRatio: 2.2,
		FadeMin:       0,
		FadeMax:       0.68,
		BaseColor:     Red,
	}
}

func TestBuildProfilesStopCount(t *testing.T) {
	got := BuildProfiles(testProfileParams())
	if len(got.Widths) != ProfileStops {
		t.Errorf("len(Widths) = %d, want %d", len(got.Widths), ProfileStops)
	}
	if len(got.Colors) != ProfileStops {
		t.Errorf("len(Colors) = %d, want %d", len(got.Colors), ProfileStops)
	}
}

func TestBuildProfilesDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProfileParams)
	}{
		{"zero length", func(p *ProfileParams) { p.TotalLength = 0 }},
		{"negative length", func(p *ProfileParams) { p.TotalLength = -5 }},
		{"zero neck", func(p *ProfileParams) { p.NeckWidth = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfileParams()
			tt.mutate(&p)
			got := BuildProfiles(p)
			if len(got.Widths) != 0 || len(got.Colors) != 0 {
				t.Errorf("BuildProfiles = %+v, want empty", got)
			}
		})
	}
}

func TestBuildProfilesWidthLaw(t *testing.T) {
	p := testProfileParams()
	got := BuildProfiles(p)

	tail := p.NeckWidth * p.TailNeckRatio
	if !near(got.Widths[0], tail, testEps) {
		t.Errorf("Widths[0] = %v, want tail width %v", got.Widths[0], tail)
	}
	if !near(got.Widths[ProfileStops-1], p.NeckWidth, testEps) {
		t.Errorf("Widths[last] = %v, want neck width %v", got.Widths[ProfileStops-1], p.NeckWidth)
	}

	// Monotone non-increasing from tail to neck.
	for i := 1; i < ProfileStops; i++ {
		if got.Widths[i] > got.Widths[i-1]+testEps {
			t.Fatalf("width increased at stop %d: %v -> %v", i, got.Widths[i-1], got.Widths[i])
		}
	}

	// Past the neck ratio the width is exactly the neck width.
	for i := 0; i < ProfileStops; i++ {
		u := float64(i) / (ProfileStops - 1)
		if u >= p.NeckRatio && !near(got.Widths[i], p.NeckWidth, testEps) {
			t.Errorf("Widths[%d] (u=%v) = %v, want constant neck %v", i, u, got.Widths[i], p.NeckWidth)
		}
	}
}

func TestBuildProfilesColorLaw(t *testing.T) {
	p := testProfileParams()
	got := BuildProfiles(p)

	if got.Colors[0].A != 0 {
		t.Errorf("Colors[0].A = %v, want 0 at fade start", got.Colors[0].A)
	}

	// Alpha never decreases along the fade.
	for i := 1; i < ProfileStops; i++ {
		if got.Colors[i].A < got.Colors[i-1].A-testEps {
			t.Fatalf("alpha decreased at stop %d: %v -> %v", i, got.Colors[i-1].A, got.Colors[i].A)
		}
	}

	// Colors are premultiplied: channels never exceed alpha-scaled base.
	for i, c := range got.Colors {
		if c.R > p.BaseColor.R*c.A+testEps {
			t.Errorf("Colors[%d] not premultiplied: R=%v A=%v", i, c.R, c.A)
		}
	}
}

func TestBuildProfilesPure(t *testing.T) {
	p := testProfileParams()
	a := BuildProfiles(p)
	b := BuildProfiles(p)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical params produced different profiles")
	}
}

func TestProfileWidthFunction(t *testing.T) {
	tests := []struct {
		name                     string
		u, neck, tail, neckRatio float64
		want                     float64
	}{
		{"at tail", 0, 4, 8.8, 0.7, 8.8},
		{"at neck ratio", 0.7, 4, 8.8, 0.7, 4},
		{"past neck ratio", 0.9, 4, 8.8, 0.7, 4},
		{"zero neck ratio", 0.1, 4, 8.8, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := profileWidth(tt.u, tt.neck, tt.tail, tt.neckRatio)
			if !near(got, tt.want, testEps) {
				t.Errorf("profileWidth(%v) = %v, want %v", tt.u, got, tt.want)
			}
		})
	}
}
