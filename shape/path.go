package shape

type Op int

const (
	OpMove Op = iota
	OpLine
	OpCubic
	OpClose
)

func (op Op) String() string {
	switch op {
	case OpMove:
		return "M"
	case OpLine:
		return "L"
	case OpCubic:
		return "C"
	case OpClose:
		return "Z"
	}

	return "?"
}

type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Segment is one draw instruction. Move and Line use To only, Cubic uses
// C1, C2 and To, Close uses nothing.
type Segment struct {
	Op Op    `yaml:"op" json:"op"`
	C1 Point `yaml:"c1,omitempty" json:"c1,omitempty"`
	C2 Point `yaml:"c2,omitempty" json:"c2,omitempty"`
	To Point `yaml:"to,omitempty" json:"to,omitempty"`
}

type Path struct {
	Segments []Segment `yaml:"segments" json:"segments"`
}

func (p *Path) Empty() bool {
	return p == nil || len(p.Segments) == 0
}

func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpMove, To: Pt(x, y)})
}

func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpLine, To: Pt(x, y)})
}

func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) {
	p.Segments = append(p.Segments, Segment{
		Op: OpCubic,
		C1: Pt(x1, y1),
		C2: Pt(x2, y2),
		To: Pt(x, y),
	})
}

func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Op: OpClose})
}

// Vertices returns the end point of every segment that has one, in order.
func (p *Path) Vertices() []Point {
	if p == nil {
		return nil
	}

	vs := make([]Point, 0, len(p.Segments))

	for _, seg := range p.Segments {
		if seg.Op == OpClose {
			continue
		}

		vs = append(vs, seg.To)
	}

	return vs
}
