package scale

// Mapping is a monotonic domain to range function with its inverse.
type Mapping interface {
	Map(v float64) float64
	Invert(r float64) float64

	Domain() (d0, d1 float64)
	Range() (r0, r1 float64)
}
