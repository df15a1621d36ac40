package canvas

import "github.com/chewxy/math32"

// DrawPolygon rasterizes the outline of a polygon by connecting consecutive
// vertices with DrawLine and closing the ring from the last vertex back to
// the first. An empty vertex list is a no-op.
func (c *Canvas) DrawPolygon(vertices []Point, paint RGBA) {
	if len(vertices) == 0 {
		return
	}

	for i := 1; i < len(vertices); i++ {
		v1 := vertices[i]
		v2 := vertices[i-1]
		c.DrawLine(v1.X, v1.Y, v2.X, v2.Y, paint)
	}

	first := vertices[0]
	last := vertices[len(vertices)-1]
	c.DrawLine(first.X, first.Y, last.X, last.Y, paint)
}

// DrawPolygonSolid fills a simple (non-self-intersecting) polygon with a
// two-boundary scanline walk. The vertex ring is split at its top and
// bottom vertices into two chains; one chain is traced into a per-row
// right bound, the other into a per-row left bound, and every row span
// [left, right) is painted.
//
// clockwise names the ring's winding in the conventional mathematical
// (y-up) sense. The flag is validated against the ring's shoelace sign;
// on a mismatch a warning is logged through the package logger and the
// detected winding is used, so the fill stays correct. Self-intersecting
// input is the caller's responsibility and produces unspecified output.
func (c *Canvas) DrawPolygonSolid(vertices []Point, clockwise bool, paint RGBA) {
	if len(vertices) == 0 {
		return
	}

	if area := signedArea2(vertices); area != 0 {
		if actual := area < 0; actual != clockwise {
			Logger().Warn("polygon winding does not match clockwise flag, using detected winding",
				"clockwise", clockwise, "signed_area", area)
			clockwise = actual
		}
	}

	minVert, maxVert := 0, 0
	for i, v := range vertices {
		if v.Y < vertices[minVert].Y {
			minVert = i
		}
		if v.Y > vertices[maxVert].Y {
			maxVert = i
		}
	}

	// Translate so the top vertex sits at the local origin; row arrays are
	// indexed by the translated y.
	origin := vertices[minVert]
	verts := make([]Point, len(vertices))
	for i, v := range vertices {
		verts[i] = Point{X: v.X - origin.X, Y: v.Y - origin.Y}
	}

	rows := verts[maxVert].Y + 1
	leftBound := make([]int, rows)
	rightBound := make([]int, rows)

	// For a clockwise ring the chain leading out of the bottom vertex wraps
	// around the right side of the polygon; counter-clockwise it is the
	// chain out of the top vertex.
	rightStart, rightEnd := maxVert, minVert
	if !clockwise {
		rightStart, rightEnd = minVert, maxVert
	}

	n := len(verts)
	for i := rightStart; ; {
		v1 := verts[i%n]
		v2 := verts[(i+1)%n]
		boundaryLine(rightBound, true, v1.X, v1.Y, v2.X, v2.Y)
		i++
		if i%n == rightEnd {
			break
		}
	}
	for i := rightEnd; ; {
		v1 := verts[i%n]
		v2 := verts[(i+1)%n]
		boundaryLine(leftBound, false, v1.X, v1.Y, v2.X, v2.Y)
		i++
		if i%n == rightStart {
			break
		}
	}

	for i := 0; i < rows; i++ {
		y := origin.Y + i
		for x := leftBound[i]; x < rightBound[i]; x++ {
			c.DrawPixel(origin.X+x, y, paint)
		}
	}
}

// boundaryLine traces one polygon edge with the line-stepping recurrence
// from DrawLine, but instead of painting it records the x reached on each
// scanline row. In right mode every touched x is recorded, so the last
// write per row wins; in left mode a shallow edge records only the first x
// on each newly entered row. That asymmetry is what makes one chain act as
// a right boundary and the other as a left boundary when a shallow edge
// crosses several columns within one row. Rows outside the buffer are
// ignored.
func boundaryLine(buff []int, right bool, x1, y1, x2, y2 int) {
	set := func(row, x int) {
		if row >= 0 && row < len(buff) {
			buff[row] = x
		}
	}

	if x1 == x2 {
		sy, ey := y1, y2
		if ey < sy {
			sy, ey = ey, sy
		}
		for y := sy; y <= ey; y++ {
			set(y, x1)
		}
		return
	}

	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)

	if math32.Abs(float32(y2-y1)/float32(x2-x1)) <= 1 {
		sx, sy, ex, ey := x1, y1, x2, y2
		if x2 < x1 {
			sx, sy, ex, ey = x2, y2, x1, y1
		}
		step := 1
		if ey < sy {
			step = -1
		}

		a := 2 * dy
		b := a - 2*dx
		p := a - dx

		set(sy, sx)
		offset := 0
		newRow := false
		for i := 1; i <= ex-sx; i++ {
			if p < 0 {
				p += a
			} else {
				offset += step
				newRow = true
				p += b
			}
			if right || newRow {
				set(sy+offset, sx+i)
				newRow = false
			}
		}
	} else {
		// Steep edges touch each row exactly once, so left and right mode
		// record the same thing.
		sx, sy, ex, ey := x1, y1, x2, y2
		if y2 < y1 {
			sx, sy, ex, ey = x2, y2, x1, y1
		}
		step := 1
		if ex < sx {
			step = -1
		}

		a := 2 * dx
		b := a - 2*dy
		p := a - dy

		set(sy, sx)
		offset := 0
		for i := 1; i <= ey-sy; i++ {
			if p < 0 {
				p += a
			} else {
				offset += step
				p += b
			}
			set(sy+i, sx+offset)
		}
	}
}

// signedArea2 returns twice the polygon's signed area by the shoelace
// formula. With the canvas's y-down coordinates, a negative value means
// the ring is clockwise in the conventional y-up sense.
func signedArea2(vertices []Point) int {
	area := 0
	n := len(vertices)
	for i, v := range vertices {
		next := vertices[(i+1)%n]
		area += v.X*next.Y - next.X*v.Y
	}
	return area
}
