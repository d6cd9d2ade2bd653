package mandel

import "fmt"

const (
	baseHue    = 188
	saturation = 255
	value      = 255
)

// Color is a 24-bit RGB value.
type Color struct {
	R, G, B uint8
}

// Black is the background left in pixels whose samples never escape.
var Black = Color{}

// Packed returns the colour as 0xRRGGBB.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements color.Color. Colours are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", c.Packed())
}

// Unpack is the inverse of Packed; bits above 0xFFFFFF are ignored.
func Unpack(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Hue maps an escape iteration to a hue in degrees. The result is not
// normalised; HSVToRGB folds it back into [0, 360).
func Hue(iteration, maxIterations int) float32 {
	return baseHue + float32(360*iteration)/float32(maxIterations)
}

// HSVToRGB converts hue h in degrees, saturation s in [0, 255] and value v in
// [0, 255] with the six-sector decomposition. Arithmetic is single precision.
//
// V is not normalised, so the sector outputs are already on the byte scale.
// Components are truncated and converted without clamping: anything outside
// [0, 255] wraps in the uint8 conversion.
func HSVToRGB(h, s, v float32) Color {
	if h >= 360 {
		h -= float32(360 * float32(int(h/360)))
	}

	hh := max(0, min(360, h))
	ss := max(0, min(255, s)) / 255
	vv := max(0, min(255, v))
	if hh >= 360 {
		hh = 0
	}

	hh /= 60
	i := int(hh)
	f := hh - float32(i)

	p := vv * (1 - ss)
	q := vv * (1 - float32(ss*f))
	t := vv * (1 - float32((1-f)*ss))

	var r, g, b float32
	switch i {
	case 0:
		r, g, b = vv, t, p
	case 1:
		r, g, b = q, vv, p
	case 2:
		r, g, b = p, vv, t
	case 3:
		r, g, b = p, q, vv
	case 4:
		r, g, b = t, p, vv
	case 5:
		r, g, b = vv, p, q
	}

	return Color{R: uint8(int(r)), G: uint8(int(g)), B: uint8(int(b))}
}

// ColorFor returns the colour of an escaped sample. The second result is
// false for bounded samples, which keep the background.
func ColorFor(res EscapeResult, maxIterations int) (Color, bool) {
	if !res.Escaped {
		return Color{}, false
	}
	return HSVToRGB(Hue(res.Iteration, maxIterations), saturation, value), true
}

// Palette holds the colour of every escape iteration below a cutoff.
type Palette []Color

// NewPalette precomputes ColorFor for iterations [0, maxIterations).
func NewPalette(maxIterations int) Palette {
	p := make(Palette, maxIterations)
	for i := range p {
		p[i] = HSVToRGB(Hue(i, maxIterations), saturation, value)
	}
	return p
}

func (p Palette) ColorFor(res EscapeResult) (Color, bool) {
	if !res.Escaped {
		return Color{}, false
	}
	return p[res.Iteration], true
}
