package shape

// bumpX joins consecutive points with cubics whose control points sit on
// the horizontal midpoint, so the curve leaves and enters each point flat.
type bumpX struct {
	p      *Path
	point  int
	x0, y0 float64
}

func (c *bumpX) LineStart() {
	c.point = 0
}

func (c *bumpX) LineEnd() {
	if c.point == 1 {
		c.p.Close()
	}
}

func (c *bumpX) Point(x, y float64) {
	if c.point == 0 {
		c.point = 1
		c.p.MoveTo(x, y)
	} else {
		c.point = 2
		mx := (c.x0 + x) / 2
		c.p.CubicTo(mx, c.y0, mx, y, x, y)
	}

	c.x0, c.y0 = x, y
}
