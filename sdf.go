package contour

import "math"

// Circle is the signed distance field of a circle.
type Circle struct {
	Center Point
	Radius float64
}

// Distance returns the signed distance from p to the circle boundary.
func (c Circle) Distance(p Point) float64 {
	return p.Distance(c.Center) - c.Radius
}

// Normal returns the outward unit normal at the surface point nearest p.
// At the exact center the gradient is undefined; an arbitrary unit
// vector is returned so callers always receive a usable normal.
func (c Circle) Normal(p Point) Point {
	d := p.Sub(c.Center)
	if d.X == 0 && d.Y == 0 {
		return Point{X: 1}
	}
	return d.Normalize()
}

// RoundedRect is the signed distance field of a rounded rectangle.
type RoundedRect struct {
	Center       Point
	HalfW, HalfH float64
	CornerRadius float64
}

// Distance returns the signed distance from p to the rounded rectangle.
// Negative values are inside, positive values are outside.
func (r RoundedRect) Distance(p Point) float64 {
	dx, dy := r.cornerFrame(p)

	// Outside the corner region: max(dx, dy) gives the distance to the edge.
	// Inside the corner region: the Euclidean distance to the corner circle.
	outside := math.Sqrt(math.Max(dx, 0)*math.Max(dx, 0) + math.Max(dy, 0)*math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)

	return outside + inside - r.CornerRadius
}

// Normal returns the outward unit normal of the rounded rectangle at the
// surface point nearest p.
func (r RoundedRect) Normal(p Point) Point {
	dx, dy := r.cornerFrame(p)

	var n Point
	switch {
	case dx > 0 && dy > 0:
		// Corner region: gradient points away from the corner circle center.
		n = Point{X: dx, Y: dy}.Normalize()
	case dx > dy:
		n = Point{X: 1}
	default:
		n = Point{Y: 1}
	}

	// Undo the quadrant folding.
	if p.X < r.Center.X {
		n.X = -n.X
	}
	if p.Y < r.Center.Y {
		n.Y = -n.Y
	}
	return n
}

// cornerFrame translates p to the rectangle center and folds it into the
// first quadrant, returning offsets relative to the corner circle center.
func (r RoundedRect) cornerFrame(p Point) (dx, dy float64) {
	dx = math.Abs(p.X-r.Center.X) - r.HalfW + r.CornerRadius
	dy = math.Abs(p.Y-r.Center.Y) - r.HalfH + r.CornerRadius
	return dx, dy
}

// Capsule is the signed distance field of a line segment inflated by
// HalfWidth (a stadium shape).
type Capsule struct {
	A, B      Point
	HalfWidth float64
}

// Distance returns the signed distance from p to the capsule boundary.
func (c Capsule) Distance(p Point) float64 {
	return p.Distance(c.closest(p)) - c.HalfWidth
}

// Normal returns the outward unit normal at the surface point nearest p.
func (c Capsule) Normal(p Point) Point {
	d := p.Sub(c.closest(p))
	if d.X == 0 && d.Y == 0 {
		return Point{X: 1}
	}
	return d.Normalize()
}

// closest returns the point on segment AB nearest to p.
func (c Capsule) closest(p Point) Point {
	ab := c.B.Sub(c.A)
	denom := ab.Dot(ab)
	if denom == 0 {
		return c.A
	}
	t := p.Sub(c.A).Dot(ab) / denom
	t = math.Max(0, math.Min(1, t))
	return c.A.Lerp(c.B, t)
}

// Invert flips an oracle inside out: its interior becomes the exterior.
type Invert struct {
	Oracle Oracle
}

// Distance returns the negated distance of the wrapped oracle.
func (i Invert) Distance(p Point) float64 { return -i.Oracle.Distance(p) }

// Normal returns the flipped normal of the wrapped oracle.
func (i Invert) Normal(p Point) Point { return i.Oracle.Normal(p).Mul(-1) }

// Union is the boolean union of two oracles (pointwise minimum).
type Union struct {
	A, B Oracle
}

// Distance returns the smaller of the two member distances.
func (u Union) Distance(p Point) float64 {
	return math.Min(u.A.Distance(p), u.B.Distance(p))
}

// Normal returns the normal of whichever member is nearer at p.
func (u Union) Normal(p Point) Point {
	if u.A.Distance(p) <= u.B.Distance(p) {
		return u.A.Normal(p)
	}
	return u.B.Normal(p)
}

// Intersection is the boolean intersection of two oracles (pointwise
// maximum).
type Intersection struct {
	A, B Oracle
}

// Distance returns the larger of the two member distances.
func (s Intersection) Distance(p Point) float64 {
	return math.Max(s.A.Distance(p), s.B.Distance(p))
}

// Normal returns the normal of whichever member dominates at p.
func (s Intersection) Normal(p Point) Point {
	if s.A.Distance(p) >= s.B.Distance(p) {
		return s.A.Normal(p)
	}
	return s.B.Normal(p)
}
