package shape

// basis is a uniform cubic B-spline. It passes through the first and last
// points only; interior points act as control points.
type basis struct {
	p      *Path
	point  int
	x0, x1 float64
	y0, y1 float64
}

func (c *basis) LineStart() {
	c.point = 0
}

func (c *basis) LineEnd() {
	switch c.point {
	case 3:
		c.segment(c.x1, c.y1)
		c.p.LineTo(c.x1, c.y1)
	case 2:
		c.p.LineTo(c.x1, c.y1)
	case 1:
		c.p.Close()
	}
}

func (c *basis) Point(x, y float64) {
	switch c.point {
	case 0:
		c.point = 1
		c.p.MoveTo(x, y)
	case 1:
		c.point = 2
	case 2:
		c.point = 3
		c.p.LineTo((5*c.x0+c.x1)/6, (5*c.y0+c.y1)/6)
		c.segment(x, y)
	default:
		c.segment(x, y)
	}

	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
}

func (c *basis) segment(x, y float64) {
	c.p.CubicTo(
		(2*c.x0+c.x1)/3, (2*c.y0+c.y1)/3,
		(c.x0+2*c.x1)/3, (c.y0+2*c.y1)/3,
		(c.x0+4*c.x1+x)/6, (c.y0+4*c.y1+y)/6,
	)
}
