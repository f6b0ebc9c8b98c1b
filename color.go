package annotate

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color returns alpha-premultiplied channels.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// Named looks up an SVG 1.1 color name ("red", "steelblue", ...).
// The second return value reports whether the name is known.
func Named(name string) (RGBA, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return RGBA{}, false
	}
	return FromColor(c), true
}

// Hex parses a "#RGB", "#RRGGBB" or "#RRGGBBAA" color string. The
// leading "#" is optional. The second return value reports whether the
// string was well-formed.
func Hex(s string) (RGBA, bool) {
	s = strings.TrimPrefix(s, "#")

	var r, g, b, a uint64
	a = 255
	var err error
	switch len(s) {
	case 3:
		var v uint64
		v, err = strconv.ParseUint(s, 16, 16)
		// Expand each nibble: 0xF -> 0xFF.
		r = (v >> 8 & 0xF) * 17
		g = (v >> 4 & 0xF) * 17
		b = (v & 0xF) * 17
	case 6:
		var v uint64
		v, err = strconv.ParseUint(s, 16, 32)
		r, g, b = v>>16&0xFF, v>>8&0xFF, v&0xFF
	case 8:
		var v uint64
		v, err = strconv.ParseUint(s, 16, 64)
		r, g, b, a = v>>24&0xFF, v>>16&0xFF, v>>8&0xFF, v&0xFF
	default:
		return RGBA{}, false
	}
	if err != nil {
		return RGBA{}, false
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// Premultiply returns the color with channels multiplied by alpha.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// WithAlpha returns the color with alpha replaced by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common annotation colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = FromColor(colornames.Red)
	Orange      = FromColor(colornames.Orange)
	Yellow      = FromColor(colornames.Yellow)
	Green       = FromColor(colornames.Limegreen)
	Blue        = FromColor(colornames.Dodgerblue)
	Transparent = RGBA{}
)
