package canvas

// Point is an integer pixel coordinate. The origin is the top-left corner
// of the canvas; y grows downward.
type Point struct {
	X, Y int
}

// Canvas is a rectangular pixel buffer of opaque colors, stored row-major
// as a single flat slice of length Width*Height.
//
// A Canvas has no internal locking and assumes a single mutator at a time;
// callers sharing one across goroutines must synchronize externally.
type Canvas struct {
	width  int
	height int
	buffer []RGB
}

// New creates a canvas with the given dimensions, every pixel black.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		buffer: make([]RGB, width*height),
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Buffer returns the backing pixel slice, row-major with index y*Width+x.
func (c *Canvas) Buffer() []RGB {
	return c.buffer
}

// Packed32 returns the buffer as one 0x00RRGGBB word per pixel, in buffer
// order. This is the hand-off format expected by a presentation surface.
func (c *Canvas) Packed32() []uint32 {
	packed := make([]uint32, len(c.buffer))
	for i, px := range c.buffer {
		packed[i] = uint32(px.R)<<16 | uint32(px.G)<<8 | uint32(px.B)
	}
	return packed
}

// Inside reports whether (x, y) lies on the canvas. Coordinates are signed
// so off-canvas positions are representable without wraparound.
func (c *Canvas) Inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the color at (x, y), or false if the coordinate is off-canvas.
func (c *Canvas) Get(x, y int) (RGB, bool) {
	if !c.Inside(x, y) {
		return RGB{}, false
	}
	return c.buffer[y*c.width+x], true
}

// Set overwrites the pixel at (x, y) without blending. It reports whether
// the coordinate was on the canvas; off-canvas calls mutate nothing.
func (c *Canvas) Set(x, y int, color RGB) bool {
	if !c.Inside(x, y) {
		return false
	}
	c.buffer[y*c.width+x] = color
	return true
}

// Fill overwrites every pixel with the given color.
func (c *Canvas) Fill(color RGB) {
	for i := range c.buffer {
		c.buffer[i] = color
	}
}

// Resize reallocates the buffer for the new dimensions. The old contents
// are discarded and every pixel is black afterward.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	Logger().Debug("canvas resize",
		"from_width", c.width, "from_height", c.height,
		"to_width", width, "to_height", height)
	c.width = width
	c.height = height
	c.buffer = make([]RGB, width*height)
}

// Drawable is anything that can paint itself onto a canvas.
type Drawable interface {
	Draw(c *Canvas)
}

// Draw renders a drawable onto the canvas. It exists so that shape kinds
// defined outside this package render through the same entry point as the
// built-in ones.
func (c *Canvas) Draw(d Drawable) {
	d.Draw(c)
}

// DrawPixel blends a translucent paint over the pixel at (x, y) and reports
// whether the coordinate was on the canvas. This is the single mutation and
// clipping point for every shape rasterizer: off-canvas pixels of a shape
// are silently dropped here.
func (c *Canvas) DrawPixel(x, y int, paint RGBA) bool {
	if !c.Inside(x, y) {
		return false
	}
	i := y*c.width + x
	c.buffer[i] = c.buffer[i].Blend(paint)
	return true
}
