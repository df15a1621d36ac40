package canvas

// DrawCircle rasterizes a circle outline of radius r around (cx, cy) using
// the midpoint circle algorithm: one octant is stepped with an integer
// decision variable and the other seven follow by symmetry, so the drawn
// pixel set is invariant under all eight reflections. A radius of zero
// draws a single pixel.
func (c *Canvas) DrawCircle(cx, cy, r int, paint RGBA) {
	e := -r
	xo := r
	yo := 0

	for yo <= xo {
		c.DrawPixel(cx+xo, cy+yo, paint)
		c.DrawPixel(cx+xo, cy-yo, paint)
		c.DrawPixel(cx-xo, cy+yo, paint)
		c.DrawPixel(cx-xo, cy-yo, paint)

		c.DrawPixel(cx+yo, cy+xo, paint)
		c.DrawPixel(cx-yo, cy+xo, paint)
		c.DrawPixel(cx+yo, cy-xo, paint)
		c.DrawPixel(cx-yo, cy-xo, paint)

		e += 2*yo + 1
		yo++
		if e >= 0 {
			e -= 2*xo - 1
			xo--
		}
	}
}

// DrawCircleSolid rasterizes a filled disk of radius r around (cx, cy).
// It runs the same midpoint stepping as DrawCircle but records, for every
// scanline row in [cy-r, cy+r], the leftmost and rightmost x reached by the
// octant symmetry, then fills each row's span inclusive of both bounds.
// The filled set is a superset of the outline and each row is contiguous.
func (c *Canvas) DrawCircleSolid(cx, cy, r int, paint RGBA) {
	if r < 0 {
		return
	}

	rows := 2*r + 1
	left := make([]int, rows)
	right := make([]int, rows)
	for i := range left {
		left[i] = cx + r + 1 // sentinel: beyond any reachable x
		right[i] = cx - r - 1
	}

	mark := func(x, y int) {
		i := y - (cy - r)
		if i < 0 || i >= rows {
			return
		}
		if x < left[i] {
			left[i] = x
		}
		if x > right[i] {
			right[i] = x
		}
	}

	e := -r
	xo := r
	yo := 0

	for yo <= xo {
		mark(cx+xo, cy+yo)
		mark(cx+xo, cy-yo)
		mark(cx-xo, cy+yo)
		mark(cx-xo, cy-yo)

		mark(cx+yo, cy+xo)
		mark(cx-yo, cy+xo)
		mark(cx+yo, cy-xo)
		mark(cx-yo, cy-xo)

		e += 2*yo + 1
		yo++
		if e >= 0 {
			e -= 2*xo - 1
			xo--
		}
	}

	for i := 0; i < rows; i++ {
		y := cy - r + i
		for x := left[i]; x <= right[i]; x++ {
			c.DrawPixel(x, y, paint)
		}
	}
}
