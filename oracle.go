package contour

// Oracle is the implicit-surface contract consumed by Build.
//
// Distance returns the signed distance from p to the surface: negative
// inside, positive outside, zero on the boundary. Normal returns the
// outward unit normal of the nearest surface point. Both must be pure
// and safe for concurrent reads; Build never mutates an Oracle.
type Oracle interface {
	Distance(p Point) float64
	Normal(p Point) Point
}
