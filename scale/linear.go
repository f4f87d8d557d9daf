package scale

func NewLinear(d0, d1, r0, r1 float64) Mapping {
	return &linearImpl{
		d0: d0,
		d1: d1,
		r0: r0,
		r1: r1,
	}
}

type linearImpl struct {
	d0, d1 float64
	r0, r1 float64
}

func (impl *linearImpl) Domain() (float64, float64) {
	return impl.d0, impl.d1
}

func (impl *linearImpl) Range() (float64, float64) {
	return impl.r0, impl.r1
}

func (impl *linearImpl) Map(v float64) float64 {
	return lerp(impl.r0, impl.r1, normalize(impl.d0, impl.d1, v))
}

func (impl *linearImpl) Invert(r float64) float64 {
	if impl.d0 == impl.d1 {
		return impl.d0
	}

	return lerp(impl.d0, impl.d1, normalize(impl.r0, impl.r1, r))
}

// normalize returns 0.5 for an empty interval, which puts every value on
// the middle of the range.
func normalize(a, b, v float64) float64 {
	if b == a {
		return 0.5
	}

	return (v - a) / (b - a)
}

// lerp hits a at n == 0 and b at n == 1 exactly. The a+(b-a)*n form keeps
// the error relative to the interval width, not to the magnitude of a, which
// matters for epoch milliseconds.
func lerp(a, b, n float64) float64 {
	if n == 1 {
		return b
	}

	return a + (b-a)*n
}
