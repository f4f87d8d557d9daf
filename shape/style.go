package shape

import (
	"strings"

	"github.com/spf13/cast"
)

type CurveStyle int

const (
	CurveBasis CurveStyle = iota
	CurveBumpX
	CurveLinear
	CurveMonotoneX
	CurveNatural
)

const DefaultCurveStyle = CurveBasis

var curveStyleNames = map[CurveStyle]string{
	CurveBasis:     "curveBasis",
	CurveBumpX:     "curveBumpX",
	CurveLinear:    "curveLinear",
	CurveMonotoneX: "curveMonotoneX",
	CurveNatural:   "natural",
}

var curveStyleAliases = map[string]CurveStyle{
	"curvebasis":     CurveBasis,
	"basis":          CurveBasis,
	"curvebumpx":     CurveBumpX,
	"bumpx":          CurveBumpX,
	"bump":           CurveBumpX,
	"curvelinear":    CurveLinear,
	"linear":         CurveLinear,
	"curvemonotonex": CurveMonotoneX,
	"monotonex":      CurveMonotoneX,
	"monotone":       CurveMonotoneX,
	"natural":        CurveNatural,
	"curvenatural":   CurveNatural,
}

func (style CurveStyle) String() string {
	if s, ok := curveStyleNames[style]; ok {
		return s
	}

	return curveStyleNames[DefaultCurveStyle]
}

func (style CurveStyle) Valid() bool {
	_, ok := curveStyleNames[style]

	return ok
}

func (style CurveStyle) New(p *Path) Curve {
	switch style {
	case CurveBumpX:
		return &bumpX{p: p}
	case CurveLinear:
		return &linear{p: p}
	case CurveMonotoneX:
		return &monotoneX{p: p}
	case CurveNatural:
		return &natural{p: p}
	case CurveBasis:
		fallthrough
	default:
		return &basis{p: p}
	}
}

// ParseCurveStyle accepts a style name or a CurveStyle value. ok is false
// when v names no known style, in which case the default style is returned.
func ParseCurveStyle(v interface{}) (style CurveStyle, ok bool) {
	if cs, isStyle := v.(CurveStyle); isStyle {
		if cs.Valid() {
			return cs, true
		}

		return DefaultCurveStyle, false
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return DefaultCurveStyle, false
	}

	style, ok = curveStyleAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return DefaultCurveStyle, false
	}

	return style, true
}

func CurveStyles() []CurveStyle {
	return []CurveStyle{CurveBasis, CurveBumpX, CurveLinear, CurveMonotoneX, CurveNatural}
}
