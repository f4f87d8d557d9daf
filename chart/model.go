package chart

import (
	"github.com/sgostarter/libpricechart/scale"
	"github.com/sgostarter/libpricechart/series"
	"github.com/sgostarter/libpricechart/shape"
)

type Canvas struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Geometry is a dataset projected onto one canvas. It is never modified
// after Project returns it, so it can be shared between lookups.
type Geometry struct {
	Path  *shape.Path
	Style shape.CurveStyle

	Time  scale.Mapping
	Price scale.Mapping
	Data  series.Dataset

	XRangeMin float64
	XRangeMax float64

	Canvas Canvas
}

// Empty reports a geometry built without samples; it has a path with no
// segments and no mappings.
func (g *Geometry) Empty() bool {
	return g == nil || len(g.Data) == 0 || g.Time == nil || g.Price == nil
}

func (g *Geometry) ClampX(x float64) float64 {
	return scale.Clamp(x, g.XRangeMin, g.XRangeMax)
}

// Result is what sits on the curve at one screen X.
type Result struct {
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
}

type Cursor struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
}
