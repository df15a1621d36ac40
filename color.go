package canvas

// RGB is an opaque color with 8-bit channels. It is the only color type
// stored in a canvas buffer.
type RGB struct {
	R, G, B uint8
}

// RGBA is a translucent paint color with 8-bit channels. Alpha 0 is fully
// transparent, 255 fully opaque. RGBA values are never stored in a buffer;
// they exist only as input to blending.
type RGBA struct {
	R, G, B, A uint8
}

// RGB splits the color into its opaque part and its alpha byte.
func (c RGBA) RGB() (RGB, uint8) {
	return RGB{R: c.R, G: c.G, B: c.B}, c.A
}

// Floats returns the color as normalized float32 components in RGBA order,
// the layout expected by numeric consumers of the packed buffer.
func (c RGBA) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// Lerp interpolates per channel between c and over by t in [0, 1].
// Each channel is truncated toward zero after interpolation, not rounded;
// repeated blends accumulate truncation bias. This keeps the packed
// buffer hand-off bit-exact across implementations and is deliberate.
func (c RGB) Lerp(over RGB, t float64) RGB {
	return RGB{
		R: uint8((1-t)*float64(c.R) + t*float64(over.R)),
		G: uint8((1-t)*float64(c.G) + t*float64(over.G)),
		B: uint8((1-t)*float64(c.B) + t*float64(over.B)),
	}
}

// Blend composites a translucent paint over c. Alpha 0 leaves c unchanged;
// alpha 255 replaces c with the paint's RGB.
func (c RGB) Blend(paint RGBA) RGB {
	over, alpha := paint.RGB()
	return c.Lerp(over, float64(alpha)/255)
}
