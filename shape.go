package canvas

// The concrete shapes below are thin value types implementing Drawable, so
// shape lists can be built up and rendered through Canvas.Draw alongside
// caller-defined drawables.

// Line is a drawable line segment.
type Line struct {
	From, To Point
	Color    RGBA
}

// Draw renders the line onto the canvas.
func (l Line) Draw(c *Canvas) {
	c.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y, l.Color)
}

// Circle is a drawable circle, outlined or filled.
type Circle struct {
	Center Point
	Radius int
	Fill   bool
	Color  RGBA
}

// Draw renders the circle onto the canvas.
func (s Circle) Draw(c *Canvas) {
	if s.Fill {
		c.DrawCircleSolid(s.Center.X, s.Center.Y, s.Radius, s.Color)
		return
	}
	c.DrawCircle(s.Center.X, s.Center.Y, s.Radius, s.Color)
}

// Polygon is a drawable polygon, outlined or filled. Clockwise is only
// consulted when Fill is set; see DrawPolygonSolid for its meaning.
type Polygon struct {
	Vertices  []Point
	Fill      bool
	Clockwise bool
	Color     RGBA
}

// Draw renders the polygon onto the canvas.
func (p Polygon) Draw(c *Canvas) {
	if p.Fill {
		c.DrawPolygonSolid(p.Vertices, p.Clockwise, p.Color)
		return
	}
	c.DrawPolygon(p.Vertices, p.Color)
}
