package chart

import (
	"strconv"

	"github.com/sgostarter/libpricechart/shape"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// FormatPrice renders v with a fixed number of decimal places, rounding
// half away from zero.
func FormatPrice(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

func stringOf(v interface{}) string {
	if cs, ok := v.(shape.CurveStyle); ok {
		return strconv.Itoa(int(cs))
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "<unknown>"
	}

	return s
}
