package canvas

import "github.com/chewxy/math32"

// DrawLine rasterizes the segment from (x1, y1) to (x2, y2) using integer
// Bresenham stepping. Both endpoints are always drawn, the drawn set is
// connected for any integer endpoints, and a zero-length segment draws a
// single pixel. Every pixel receives the full paint color; there is no
// anti-aliasing.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, paint RGBA) {
	if x1 == x2 {
		sy, ey := y1, y2
		if ey < sy {
			sy, ey = ey, sy
		}
		for y := sy; y <= ey; y++ {
			c.DrawPixel(x1, y, paint)
		}
		return
	}

	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)

	if math32.Abs(float32(y2-y1)/float32(x2-x1)) <= 1 {
		// Shallow: walk x from the lower-x endpoint, stepping y by the
		// line's vertical direction whenever the decision variable flips.
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

		c.DrawPixel(sx, sy, paint)
		offset := 0
		for i := 1; i <= ex-sx; i++ {
			if p < 0 {
				p += a
			} else {
				offset += step
				p += b
			}
			c.DrawPixel(sx+i, sy+offset, paint)
		}
	} else {
		// Steep: same recurrence with the roles of x and y swapped.
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

		c.DrawPixel(sx, sy, paint)
		offset := 0
		for i := 1; i <= ey-sy; i++ {
			if p < 0 {
				p += a
			} else {
				offset += step
				p += b
			}
			c.DrawPixel(sx+offset, sy+i, paint)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
