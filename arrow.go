package annotate

import "math"

// Tactical arrow synthesis: a tapering body with a swallow-tail notch
// and a sharp head, built from a start point, an end point and the raw
// pointer trail between them.

// lengthClass discretizes the straight start-end distance of an arrow.
// Several shape parameters (tail depth, neck position, fade span) step
// between bands instead of varying continuously; purely continuous
// laws produced jarring shape changes while dragging.
type lengthClass int

const (
	classMicro  lengthClass = iota // < 60 px
	classShort                     // < 120 px
	classMedium                    // < 250 px
	classLong                      // < 450 px
	classXLong                     // >= 450 px
)

func classifyLength(d float64) lengthClass {
	switch {
	case d < 60:
		return classMicro
	case d < 120:
		return classShort
	case d < 250:
		return classMedium
	case d < 450:
		return classLong
	default:
		return classXLong
	}
}

// ArrowSizeParams are the derived dimensions of one arrow build.
// All widths and lengths are in pixels; ratios are fractions of the
// body arc length.
type ArrowSizeParams struct {
	NeckWidth       float64 // body width at the narrowest point before the head
	TailWidth       float64 // body width at the tail
	HeadBaseWidth   float64 // width of the arrowhead base
	HeadLength      float64 // length of the arrowhead along the tangent
	NeckRatio       float64 // fraction of the path where the taper ends
	FadeStart       float64 // fraction of the path where the fill fade begins
	FadeEnd         float64 // fraction of the path where the fill is fully opaque
	StraightenStart float64 // how strongly the curve is pulled straight near the tail
	SwallowDepth    float64 // depth of the tail notch
}

// Per-class shape tables. Indexed by lengthClass.
var (
	classMinNeck      = [5]float64{2, 2, 3, 3, 4}
	classTailRatio    = [5]float64{1.6, 1.9, 2.2, 2.4, 2.6}
	classNeckRatio    = [5]float64{0.55, 0.62, 0.70, 0.76, 0.80}
	classFadeEnd      = [5]float64{0.55, 0.62, 0.68, 0.70, 0.72}
	classStraighten   = [5]float64{0, 0.05, 0.08, 0.10, 0.12}
	classSwallowDepth = [5]float64{0.25, 0.30, 0.35, 0.40, 0.45}
)

const (
	// minStrokeWeight and maxStrokeWeight bound the stroke weight
	// input domain.
	minStrokeWeight = 1
	maxStrokeWeight = 20

	// minThroughDeviation is the perpendicular deviation, in pixels,
	// below which a trail is treated as straight and the chord
	// midpoint is used as the through point.
	minThroughDeviation = 5

	// headEmbedDepth shifts the arrowhead behind the curve's terminal
	// point so the body blends into the head instead of stepping.
	headEmbedDepth = 2

	// minHeadBaseWidth and minHeadLength keep the head visible at any
	// stroke weight.
	minHeadBaseWidth = 12
	minHeadLength    = 16

	// bodySamplesMain is the sample count over the first 80% of the
	// body curve; bodySamplesEnd is packed into the final 20%, where
	// an accurate tangent at the head junction matters most.
	bodySamplesMain = 48
	bodySamplesEnd  = 16

	// fillStops is the gradient resolution of the body fill.
	fillStops = 64

	// fillFadeDecay shapes the exponential alpha ramp of the fill.
	fillFadeDecay = 1.5

	// fillGamma perceptually linearizes the alpha ramp.
	fillGamma = 2.2

	// shadowAlpha and shadowOffset define the flat drop shadow.
	shadowAlpha = 0.28
)

var shadowOffset = V2(2, 2)

// saturate evaluates the saturating growth law
// min + (max-min)*(1 - e^(-k*x)), rounded to the nearest unit.
func saturate(lo, hi, k, x float64) float64 {
	return math.Round(lo + (hi-lo)*(1-math.Exp(-k*x)))
}

// arrowSizeParams derives all arrow dimensions from the stroke weight
// and the straight start-end distance.
func arrowSizeParams(strokeWeight, chordLen float64) ArrowSizeParams {
	w := math.Max(minStrokeWeight, math.Min(maxStrokeWeight, strokeWeight))
	class := classifyLength(chordLen)

	neck := saturate(1, 16, 0.15, w)
	neck = math.Min(16, math.Max(neck, classMinNeck[class]))

	tail := math.Round(neck * classTailRatio[class])

	headBase := math.Max(minHeadBaseWidth, saturate(6, 32, 0.10, w))
	headLen := math.Max(minHeadLength, saturate(8, 42, 0.10, w))
	// Long heads on short arrows would swallow the body.
	headLen = math.Max(minHeadLength, math.Min(headLen, 0.45*chordLen))

	return ArrowSizeParams{
		NeckWidth:       neck,
		TailWidth:       tail,
		HeadBaseWidth:   headBase,
		HeadLength:      headLen,
		NeckRatio:       classNeckRatio[class],
		FadeStart:       0,
		FadeEnd:         classFadeEnd[class],
		StraightenStart: classStraighten[class],
		SwallowDepth:    tail * classSwallowDepth[class],
	}
}

// ArrowSample is one position on the arrow's body curve together with
// the frame and width used to place its outline edges.
type ArrowSample struct {
	Position  Point
	Tangent   Vec2 // unit tangent
	Normal    Vec2 // unit normal (90 degrees CCW from tangent)
	Width     float64
	ArcLength float64
	Progress  float64
}

// ArrowSpec is the input to BuildArrow.
type ArrowSpec struct {
	Start, End   Point
	Trail        []Point // raw pointer samples; may be nil for a straight arrow
	StrokeWeight float64 // in [1, 20]
	Color        RGBA

	// BendHint, when positive, records a precomputed trail bend (from
	// Smooth) for trails whose interior points are unavailable. It
	// never overrides a bend measured from Trail.
	BendHint float64
}

// ArrowResult is the complete drawable output of one arrow build.
// It is an immutable value; the caching layer may hold it indefinitely.
type ArrowResult struct {
	Outline      *Path
	Fill         Brush
	ShadowFill   Brush
	ShadowOffset Vec2
	Bend         float64
	NeckRatio    float64
	Samples      []ArrowSample
	NeckWidth    float64
	TailWidth    float64
}

// BuildArrow synthesizes a tactical arrow outline, fill and shadow.
//
// The reported ok is false only for arrows too degenerate to draw
// (start and end coincide); every other input produces a closed
// outline with finite coordinates. BuildArrow holds no state and is
// deterministic: identical specs produce identical results.
func BuildArrow(spec ArrowSpec) (*ArrowResult, bool) {
	chord := spec.End.Sub(spec.Start)
	chordLen := chord.Length()
	if chordLen*chordLen < zeroLengthThreshold {
		return nil, false
	}

	through, bend := throughPoint(spec.Start, spec.End, spec.Trail)
	if bend == 0 && spec.BendHint > 0 {
		bend = spec.BendHint
	}

	size := arrowSizeParams(spec.StrokeWeight, chordLen)
	body := bodyCurve(spec.Start, spec.End, through, size.StraightenStart)
	samples := sampleBody(body, size)

	outline := assembleOutline(spec.Start, samples, size)
	fill := fillGradient(spec.Start, samples, size, spec.Color)

	return &ArrowResult{
		Outline:      outline,
		Fill:         fill,
		ShadowFill:   Solid(RGBA{A: shadowAlpha}),
		ShadowOffset: shadowOffset,
		Bend:         bend,
		NeckRatio:    size.NeckRatio,
		Samples:      samples,
		NeckWidth:    size.NeckWidth,
		TailWidth:    size.TailWidth,
	}, true
}

// throughPoint collapses the trail into the single point of maximum
// perpendicular deviation from the start-end chord. Trails that never
// deviate more than minThroughDeviation bend nothing: the chord
// midpoint is returned with zero bend.
func throughPoint(start, end Point, trail []Point) (Point, float64) {
	const endpointEps = 1e-6

	chord := end.Sub(start)
	chordLen := chord.Length()
	dir := chord.Normalize()

	best := start.Midpoint(end)
	bestDev := 0.0
	for _, p := range trail {
		if p.Distance(start) < endpointEps || p.Distance(end) < endpointEps {
			continue
		}
		dev := dir.Cross(p.Sub(start))
		if math.Abs(dev) > math.Abs(bestDev) {
			best = p
			bestDev = dev
		}
	}

	if math.Abs(bestDev) < minThroughDeviation {
		return start.Midpoint(end), 0
	}
	return best, math.Abs(bestDev) / chordLen
}

// bodyCurve builds the single cubic body curve through the through
// point. The cubic is the elevation of the quadratic that passes
// through the point at its midpoint; straighten pulls the tail-side
// control back toward the chord so long arrows leave the tail cleanly.
func bodyCurve(start, end, through Point, straighten float64) CubicBez {
	// Quadratic control whose curve hits `through` at t=0.5.
	qc := Point{
		X: 2*through.X - 0.5*(start.X+end.X),
		Y: 2*through.Y - 0.5*(start.Y+end.Y),
	}
	c1 := start.Lerp(qc, 2.0/3.0)
	c2 := end.Lerp(qc, 2.0/3.0)
	if straighten > 0 {
		c1 = c1.Lerp(start.Lerp(end, 1.0/3.0), straighten)
	}
	return CubicBez{P0: start, P1: c1, P2: c2, P3: end}
}

// sampleBody samples the body curve at bodySamplesMain positions over
// the first 80% and bodySamplesEnd positions packed into the last 20%,
// then assigns arc length, progress and the width profile.
func sampleBody(body CubicBez, size ArrowSizeParams) []ArrowSample {
	samples := make([]ArrowSample, 0, bodySamplesMain+bodySamplesEnd)

	at := func(t float64) {
		tan := body.Tangent(t)
		samples = append(samples, ArrowSample{
			Position: body.Eval(t),
			Tangent:  tan,
			Normal:   tan.Perp(),
		})
	}
	for i := 0; i < bodySamplesMain; i++ {
		at(0.8 * float64(i) / float64(bodySamplesMain-1))
	}
	for j := 1; j <= bodySamplesEnd; j++ {
		at(0.8 + 0.2*float64(j)/float64(bodySamplesEnd))
	}

	total := 0.0
	for i := 1; i < len(samples); i++ {
		total += samples[i-1].Position.Distance(samples[i].Position)
		samples[i].ArcLength = total
	}
	for i := range samples {
		if total > 0 {
			samples[i].Progress = samples[i].ArcLength / total
		}
		samples[i].Width = profileWidth(samples[i].Progress, size.NeckWidth, size.TailWidth, size.NeckRatio)
	}
	return samples
}

// assembleOutline builds the single closed figure:
// tail-left, smoothed left edge, head-left, tip, head-right, smoothed
// right edge (reversed), tail-right, then the straight swallow-tail
// notch back to tail-left. The notch and the head tip are the only
// unsmoothed features.
func assembleOutline(start Point, samples []ArrowSample, size ArrowSizeParams) *Path {
	last := len(samples) - 1
	total := samples[last].ArcLength

	// Tail frame from the curve's actual initial tangent, not the
	// chord; using the chord kinks the tail when the curve departs
	// sharply.
	t0 := samples[0].Tangent
	n0 := t0.Perp()
	tailLeft := start.Add(n0.Mul(size.TailWidth / 2))
	tailRight := start.Add(n0.Mul(-size.TailWidth / 2))
	notchApex := start.Add(t0.Mul(size.SwallowDepth))

	// Head frame from the curve's true end tangent, embedded slightly
	// behind the terminal point.
	t1 := samples[last].Tangent
	n1 := t1.Perp()
	tip := samples[last].Position.Add(t1.Mul(-headEmbedDepth))
	baseCenter := tip.Add(t1.Mul(-size.HeadLength))
	baseLeft := baseCenter.Add(n1.Mul(size.HeadBaseWidth / 2))
	baseRight := baseCenter.Add(n1.Mul(-size.HeadBaseWidth / 2))

	// Body edges stop where the head begins.
	cutoff := total - size.HeadLength
	m := 1
	for i, s := range samples {
		if s.ArcLength <= cutoff {
			m = i
		}
	}
	if m < 1 {
		m = 1
	}

	left := make([]Point, m+1)
	right := make([]Point, m+1)
	for i := 0; i <= m; i++ {
		s := samples[i]
		left[i] = s.Position.Add(s.Normal.Mul(s.Width / 2))
		right[i] = s.Position.Add(s.Normal.Mul(-s.Width / 2))
	}
	// The first sample's edges align exactly with the tail points.
	left[0] = tailLeft
	right[0] = tailRight

	p := NewPath()
	p.MoveTo(tailLeft.X, tailLeft.Y)
	smoothEdge(p, left)
	headJunction(p, left[m], samples[m].Tangent, baseLeft, true)
	p.LineTo(tip.X, tip.Y)
	p.LineTo(baseRight.X, baseRight.Y)
	headJunction(p, right[m], samples[m].Tangent, baseRight, false)
	smoothEdge(p, reversed(right))
	p.LineTo(notchApex.X, notchApex.Y)
	p.Close()
	return p
}

// smoothEdge appends the polyline pts to the path as quadratic
// segments, using each interior point as a control knotted at the
// midpoint toward its successor. The current path point must be
// pts[0]. Straight two-point edges degrade to a line.
func smoothEdge(p *Path, pts []Point) {
	n := len(pts)
	if n < 2 {
		return
	}
	if n == 2 {
		p.LineTo(pts[1].X, pts[1].Y)
		return
	}
	for i := 1; i < n-1; i++ {
		end := pts[i].Midpoint(pts[i+1])
		if i == n-2 {
			end = pts[n-1]
		}
		p.QuadraticTo(pts[i].X, pts[i].Y, end.X, end.Y)
	}
}

// headJunction blends between the last body edge point and the head
// base with a single quadratic whose control extends along the body
// tangent. Entering the head the segment runs bodyPt to headPt;
// leaving it runs headPt back to bodyPt with the same control.
func headJunction(p *Path, bodyPt Point, tangent Vec2, headPt Point, intoHead bool) {
	ctrl := bodyPt.Add(tangent.Mul(bodyPt.Distance(headPt) * 0.5))
	if intoHead {
		p.QuadraticTo(ctrl.X, ctrl.Y, headPt.X, headPt.Y)
	} else {
		p.QuadraticTo(ctrl.X, ctrl.Y, bodyPt.X, bodyPt.Y)
	}
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// fillGradient builds the body fill: transparent at the tail, ramping
// to the base color where the fade span ends, opaque beyond.
func fillGradient(start Point, samples []ArrowSample, size ArrowSizeParams, base RGBA) Brush {
	gradEnd := positionAtProgress(samples, size.FadeEnd)
	g := NewLinearGradientBrush(start, gradEnd)
	for i := 0; i < fillStops; i++ {
		u := float64(i) / (fillStops - 1)
		alpha := 1.0
		if i < fillStops-1 {
			alpha = math.Pow(1-math.Exp(-fillFadeDecay*u), 1/fillGamma)
		}
		g.AddColorStop(u, base.WithAlpha(base.A*alpha))
	}
	return g
}

// positionAtProgress returns the first sampled position at or past the
// given arc-length progress.
func positionAtProgress(samples []ArrowSample, progress float64) Point {
	for _, s := range samples {
		if s.Progress >= progress {
			return s.Position
		}
	}
	return samples[len(samples)-1].Position
}
