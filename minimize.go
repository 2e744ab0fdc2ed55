package contour

import "math"

// Minimizer finds an approximate minimizer of f over the closed interval
// [lo, hi]. Implementations must not require derivatives of f.
type Minimizer interface {
	Minimize(f func(float64) float64, lo, hi float64) float64
}

// invPhi is the reciprocal golden ratio, the interval reduction factor
// of golden-section search.
var invPhi = (math.Sqrt(5) - 1) / 2

// goldenMaxIter caps the bracketing loop; 100 iterations shrink the
// interval by a factor of ~1e-21, far past float64 resolution.
const goldenMaxIter = 100

// GoldenSection is a derivative-free bounded scalar minimizer using
// golden-section search. It converges on any unimodal profile and
// degrades gracefully (returning a bracketed point) on profiles that
// are not.
type GoldenSection struct {
	// Tol is the interval width at which the search stops.
	// Zero means the default of 1e-8.
	Tol float64
}

// Minimize returns an approximate minimizer of f on [lo, hi].
func (g GoldenSection) Minimize(f func(float64) float64, lo, hi float64) float64 {
	tol := g.Tol
	if tol <= 0 {
		tol = 1e-8
	}

	a, b := lo, hi
	c := b - (b-a)*invPhi
	d := a + (b-a)*invPhi
	fc, fd := f(c), f(d)

	for i := 0; i < goldenMaxIter && b-a > tol; i++ {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - (b-a)*invPhi
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + (b-a)*invPhi
			fd = f(d)
		}
	}
	return (a + b) / 2
}
