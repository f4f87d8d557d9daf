package shape

// Curve receives projected points in order and writes segments to a Path.
// A Curve is single use: LineStart, Point..., LineEnd.
type Curve interface {
	LineStart()
	Point(x, y float64)
	LineEnd()
}

// Build runs the points through a fresh curve of the given style.
func Build(style CurveStyle, points []Point) *Path {
	p := &Path{}

	if len(points) == 0 {
		return p
	}

	c := style.New(p)
	c.LineStart()

	for _, pt := range points {
		c.Point(pt.X, pt.Y)
	}

	c.LineEnd()

	return p
}
