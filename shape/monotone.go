package shape

import "math"

// monotoneX is a cubic Hermite spline with Steffen's slopes. It never
// overshoots between two points, given x is monotonic.
type monotoneX struct {
	p      *Path
	point  int
	x0, x1 float64
	y0, y1 float64
	t0     float64
}

func (c *monotoneX) LineStart() {
	c.point = 0
	c.t0 = math.NaN()
}

func (c *monotoneX) LineEnd() {
	switch c.point {
	case 2:
		c.p.LineTo(c.x1, c.y1)
	case 3:
		c.segment(c.t0, c.slope2(c.t0))
	case 1:
		c.p.Close()
	}
}

func (c *monotoneX) Point(x, y float64) {
	if c.point > 0 && x == c.x1 && y == c.y1 {
		return
	}

	t1 := math.NaN()

	switch c.point {
	case 0:
		c.point = 1
		c.p.MoveTo(x, y)
	case 1:
		c.point = 2
	case 2:
		c.point = 3
		t1 = c.slope3(x, y)
		c.segment(c.slope2(t1), t1)
	default:
		t1 = c.slope3(x, y)
		c.segment(c.t0, t1)
	}

	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
	c.t0 = t1
}

func (c *monotoneX) segment(t0, t1 float64) {
	dx := (c.x1 - c.x0) / 3

	c.p.CubicTo(c.x0+dx, c.y0+dx*t0, c.x1-dx, c.y1-dx*t1, c.x1, c.y1)
}

// slope3 is the tangent at (x1, y1) given its two neighbours.
func (c *monotoneX) slope3(x2, y2 float64) float64 {
	h0 := c.x1 - c.x0
	h1 := x2 - c.x1

	s0 := (c.y1 - c.y0) / divisor(h0, h1)
	s1 := (y2 - c.y1) / divisor(h1, h0)
	p := (s0*h1 + s1*h0) / (h0 + h1)

	t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}

	return t
}

// slope2 is the one-sided tangent at an end point.
func (c *monotoneX) slope2(t float64) float64 {
	h := c.x1 - c.x0
	if h == 0 {
		return t
	}

	return (3*(c.y1-c.y0)/h - t) / 2
}

// divisor returns h, or a zero signed like other when h is zero, so that
// a vertical step yields an infinite slope.
func divisor(h, other float64) float64 {
	if h != 0 {
		return h
	}

	if other < 0 {
		return math.Copysign(0, -1)
	}

	return 0
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}

	return 1
}
