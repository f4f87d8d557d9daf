package shape

type linear struct {
	p     *Path
	point int
}

func (c *linear) LineStart() {
	c.point = 0
}

func (c *linear) LineEnd() {
	if c.point == 1 {
		c.p.Close()
	}
}

func (c *linear) Point(x, y float64) {
	if c.point == 0 {
		c.point = 1
		c.p.MoveTo(x, y)

		return
	}

	c.point = 2
	c.p.LineTo(x, y)
}
