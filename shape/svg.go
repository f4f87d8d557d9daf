package shape

import (
	"strconv"
	"strings"
)

// String returns the path as SVG path data, e.g. "M8,50C20,50,20,0,92,0".
func (p *Path) String() string {
	if p.Empty() {
		return ""
	}

	var ss strings.Builder

	for _, seg := range p.Segments {
		ss.WriteString(seg.Op.String())

		switch seg.Op {
		case OpMove, OpLine:
			writePoints(&ss, seg.To)
		case OpCubic:
			writePoints(&ss, seg.C1, seg.C2, seg.To)
		case OpClose:
		}
	}

	return ss.String()
}

func writePoints(ss *strings.Builder, pts ...Point) {
	for idx, pt := range pts {
		if idx > 0 {
			ss.WriteByte(',')
		}

		ss.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
		ss.WriteByte(',')
		ss.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
	}
}
