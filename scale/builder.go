package scale

import (
	"math"

	"github.com/sgostarter/libpricechart/series"
)

const (
	MinXPadding      = 8.0
	XPaddingRatio    = 0.05
	PricePaddingRate = 0.1
)

type Scales struct {
	Time  Mapping
	Price Mapping

	XRangeMin float64
	XRangeMax float64
}

// XPadding is the horizontal inset on both sides of the curve.
func XPadding(width float64) float64 {
	return math.Max(MinXPadding, width*XPaddingRatio)
}

// Build returns nil for an empty dataset.
func Build(ds series.Dataset, width, height float64) *Scales {
	minAt, maxAt, ok := ds.TimeExtent()
	if !ok {
		return nil
	}

	minPrice, maxPrice, _ := ds.PriceExtent()

	xPad := XPadding(width)
	yPad := (maxPrice - minPrice) * PricePaddingRate

	return &Scales{
		Time:      NewTime(minAt, maxAt, xPad, width-xPad),
		Price:     NewLinear(minPrice-yPad, maxPrice+yPad, height, 0),
		XRangeMin: xPad,
		XRangeMax: width - xPad,
	}
}

// ClampX keeps x inside the drawable horizontal range.
func (s *Scales) ClampX(x float64) float64 {
	return Clamp(x, s.XRangeMin, s.XRangeMax)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
