package chart

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libpricechart/scale"
	"github.com/sgostarter/libpricechart/series"
	"github.com/sgostarter/libpricechart/shape"
)

// Project maps the dataset onto a width x height canvas and fits style
// through the projected samples. An empty dataset gives an empty geometry.
func Project(style shape.CurveStyle, ds series.Dataset, width, height float64) *Geometry {
	g := &Geometry{
		Style:  style,
		Data:   ds,
		Canvas: Canvas{Width: width, Height: height},
	}

	scales := scale.Build(ds, width, height)
	if scales == nil {
		g.Path = &shape.Path{}

		return g
	}

	g.Time = scales.Time
	g.Price = scales.Price
	g.XRangeMin = scales.XRangeMin
	g.XRangeMax = scales.XRangeMax

	points := make([]shape.Point, len(ds))
	for idx, s := range ds {
		points[idx] = shape.Pt(g.Time.Map(float64(s.At)), g.Price.Map(s.Price))
	}

	g.Path = shape.Build(style, points)

	return g
}

// ResolveCurveStyle turns a host supplied style into a CurveStyle, falling
// back to the default style with a warning.
func ResolveCurveStyle(v interface{}, logger l.Wrapper) shape.CurveStyle {
	style, ok := shape.ParseCurveStyle(v)
	if !ok && logger != nil {
		logger.WithFields(l.StringField("curveStyle", stringOf(v)),
			l.StringField("fallback", style.String())).Warn("invalid curve style, falling back")
	}

	return style
}
