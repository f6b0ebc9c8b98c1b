package annotate

import "math"

// SmoothSample is one point on a smoothed pointer trail.
type SmoothSample struct {
	Position  Point
	Tangent   Vec2    // unit tangent
	ArcLength float64 // running length from the trail start
	Progress  float64 // ArcLength normalized to [0, 1]
}

// SmoothResult is an arc-length-parameterized smooth curve fitted
// through a raw pointer trail.
//
// ArcLength and Progress are monotonically non-decreasing across
// Samples. Bend is the maximum perpendicular deviation of the raw
// trail from its straight start-end chord, normalized by chord length;
// it is 0 for straight or degenerate trails.
type SmoothResult struct {
	Samples     []SmoothSample
	TotalLength float64
	Bend        float64
}

// Positions returns the sampled positions as a flat point slice.
// Callers replaying the smoothed trail as a polyline use this.
func (r SmoothResult) Positions() []Point {
	pts := make([]Point, len(r.Samples))
	for i, s := range r.Samples {
		pts[i] = s.Position
	}
	return pts
}

const (
	// smoothSubSamples is the per-segment sampling density of the
	// Catmull-Rom fit.
	smoothSubSamples = 8

	// tangentEps is the half-width of the finite difference used for
	// tangent estimation.
	tangentEps = 1e-3
)

// Smooth fits a Catmull-Rom spline through a raw pointer trail and
// samples it uniformly per segment.
//
// Trails shorter than two points produce an empty result. A two-point
// trail is the straight-line case: exactly two samples sharing the
// chord direction as tangent, with zero bend. Smooth is deterministic;
// identical trails always yield identical results.
func Smooth(trail []Point) SmoothResult {
	if len(trail) < 2 {
		return SmoothResult{}
	}

	if len(trail) == 2 {
		dir := trail[1].Sub(trail[0]).Normalize()
		length := trail[0].Distance(trail[1])
		samples := []SmoothSample{
			{Position: trail[0], Tangent: dir, ArcLength: 0, Progress: 0},
			{Position: trail[1], Tangent: dir, ArcLength: length, Progress: 1},
		}
		if length == 0 {
			samples[1].Progress = 0
		}
		return SmoothResult{Samples: samples, TotalLength: length}
	}

	n := len(trail)
	samples := make([]SmoothSample, 0, (n-1)*smoothSubSamples+1)

	// Clamp index bounds to synthesize phantom end controls.
	ctrl := func(i int) Point {
		if i < 0 {
			i = 0
		}
		if i > n-1 {
			i = n - 1
		}
		return trail[i]
	}

	emit := func(seg int, t float64) {
		p0, p1, p2, p3 := ctrl(seg-1), ctrl(seg), ctrl(seg+1), ctrl(seg+2)
		pos := catmullRom(p0, p1, p2, p3, t)
		// Symmetric finite difference; the polynomial extends cleanly
		// slightly past [0, 1], so no clamping is needed.
		ahead := catmullRom(p0, p1, p2, p3, t+tangentEps)
		behind := catmullRom(p0, p1, p2, p3, t-tangentEps)
		tangent := ahead.Sub(behind).Normalize()
		samples = append(samples, SmoothSample{Position: pos, Tangent: tangent})
	}

	for seg := 0; seg < n-1; seg++ {
		for j := 0; j < smoothSubSamples; j++ {
			emit(seg, float64(j)/smoothSubSamples)
		}
	}
	emit(n-2, 1)

	// Accumulate arc length over the sampled polyline.
	total := 0.0
	for i := 1; i < len(samples); i++ {
		total += samples[i-1].Position.Distance(samples[i].Position)
		samples[i].ArcLength = total
	}
	if total > 0 {
		for i := range samples {
			samples[i].Progress = samples[i].ArcLength / total
		}
	}

	return SmoothResult{
		Samples:     samples,
		TotalLength: total,
		Bend:        trailBend(trail),
	}
}

// trailBend measures the maximum perpendicular deviation of interior
// trail points from the start-end chord, normalized by chord length.
func trailBend(trail []Point) float64 {
	if len(trail) < 3 {
		return 0
	}
	chord := trail[len(trail)-1].Sub(trail[0])
	chordLen := chord.Length()
	if chordLen*chordLen < zeroLengthThreshold {
		return 0
	}
	dir := chord.Mul(1 / chordLen)

	maxDev := 0.0
	for _, p := range trail[1 : len(trail)-1] {
		dev := math.Abs(dir.Cross(p.Sub(trail[0])))
		if dev > maxDev {
			maxDev = dev
		}
	}
	return maxDev / chordLen
}

// catmullRom evaluates the uniform Catmull-Rom spline segment between
// p1 and p2 at parameter t.
func catmullRom(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: 0.5 * (2*p1.X + (-p0.X+p2.X)*t +
			(2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 +
			(-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * (2*p1.Y + (-p0.Y+p2.Y)*t +
			(2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 +
			(-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	}
}
