package annotate

import "math"

// ProfileParams describes a tapered, fading body profile along an
// arc-length-parameterized path.
type ProfileParams struct {
	NeckWidth     float64 // width held after the taper ends
	TotalLength   float64 // arc length of the path
	NeckRatio     float64 // fraction of the path where the taper ends
	TailNeckRatio float64 // tail width as a multiple of neck width
	FadeMin       float64 // fraction of the path where the fade starts
	FadeMax       float64 // fraction of the path where the fade completes
	BaseColor     RGBA    // color the fade converges to
}

// Profiles holds width and premultiplied color samples at uniform
// positions along a path. Index i corresponds to progress
// i/(ProfileStops-1).
type Profiles struct {
	Widths []float64
	Colors []RGBA // premultiplied
}

// ProfileStops is the fixed sampling resolution of BuildProfiles.
const ProfileStops = 64

const (
	// widthDecay controls how quickly the body narrows from tail
	// width toward neck width within the taper span.
	widthDecay = 3.0

	// alphaDecay controls how quickly the fill becomes opaque within
	// the fade span.
	alphaDecay = 4.0
)

// profileWidth evaluates the taper law at progress u: exponential
// decay from tail width to neck width over [0, neckRatio], constant
// neck width afterwards.
func profileWidth(u, neck, tail, neckRatio float64) float64 {
	if neckRatio <= 0 || u >= neckRatio {
		return neck
	}
	return neck + (tail-neck)*math.Exp(-widthDecay*u/neckRatio)
}

// BuildProfiles samples the width and color laws of a tapered body at
// ProfileStops uniform positions.
//
// BuildProfiles is a pure function: no state, identical inputs yield
// identical outputs. Non-positive lengths or neck widths produce empty
// profiles.
func BuildProfiles(p ProfileParams) Profiles {
	if p.TotalLength <= 0 || p.NeckWidth <= 0 {
		return Profiles{}
	}

	fadeMin := clamp01(p.FadeMin)
	fadeMax := clamp01(p.FadeMax)
	if fadeMax <= fadeMin {
		fadeMax = fadeMin + 1e-6
	}
	tail := p.NeckWidth * p.TailNeckRatio

	widths := make([]float64, ProfileStops)
	colors := make([]RGBA, ProfileStops)
	for i := 0; i < ProfileStops; i++ {
		u := float64(i) / (ProfileStops - 1)
		widths[i] = profileWidth(u, p.NeckWidth, tail, p.NeckRatio)

		t := clamp01((u - fadeMin) / (fadeMax - fadeMin))
		alpha := 1 - math.Exp(-alphaDecay*t)
		colors[i] = p.BaseColor.WithAlpha(p.BaseColor.A * alpha).Premultiply()
	}
	return Profiles{Widths: widths, Colors: colors}
}
