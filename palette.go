package canvas

import colorful "github.com/lucasb-eyer/go-colorful"

// Common paint colors.
var (
	Transparent = RGBA{R: 0, G: 0, B: 0, A: 0}
	Black       = RGBA{R: 0, G: 0, B: 0, A: 255}
	White       = RGBA{R: 255, G: 255, B: 255, A: 255}
	Red         = RGBA{R: 255, G: 0, B: 0, A: 255}
	Green       = RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue        = RGBA{R: 0, G: 0, B: 255, A: 255}
)

// Grey returns an opaque grey paint with the given intensity.
func Grey(v uint8) RGBA {
	return RGBA{R: v, G: v, B: v, A: 255}
}

// Hex parses a hex color string such as "#ff8800" or "#f80" into an opaque
// paint. The leading '#' is required.
func Hex(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, err
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: 255}, nil
}

// HSL creates an opaque paint from hue [0, 360), saturation [0, 1] and
// lightness [0, 1].
func HSL(h, s, l float64) RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: 255}
}

// HSV creates an opaque paint from hue [0, 360), saturation [0, 1] and
// value [0, 1].
func HSV(h, s, v float64) RGBA {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: 255}
}

// Mix blends two paints by t in [0, 1] in Lab space, which keeps gradient
// ramps perceptually even. Alpha is interpolated linearly. Unlike RGB.Blend
// this is a color constructor, not the compositing rule; it rounds rather
// than truncates.
func Mix(a, b RGBA, t float64) RGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return RGBA{
		R: r,
		G: g,
		B: bl,
		A: uint8((1-t)*float64(a.A) + t*float64(b.A) + 0.5),
	}
}
