package scale

import "math"

// msSnap is how close an inverted time must be to a whole millisecond
// to be reported as that millisecond.
const msSnap = 1e-6

// NewTime maps epoch milliseconds onto [r0, r1].
func NewTime(minAt, maxAt int64, r0, r1 float64) Mapping {
	return &timeImpl{
		linear: linearImpl{
			d0: float64(minAt),
			d1: float64(maxAt),
			r0: r0,
			r1: r1,
		},
	}
}

type timeImpl struct {
	linear linearImpl
}

func (impl *timeImpl) Domain() (float64, float64) {
	return impl.linear.Domain()
}

func (impl *timeImpl) Range() (float64, float64) {
	return impl.linear.Range()
}

func (impl *timeImpl) Map(at float64) float64 {
	return impl.linear.Map(at)
}

func (impl *timeImpl) Invert(x float64) float64 {
	at := impl.linear.Invert(x)

	if rounded := math.Round(at); math.Abs(at-rounded) < msSnap {
		return rounded
	}

	return at
}
