package contour

// Box is an axis-aligned rectangle given by its minimum corner and
// positive side lengths.
type Box struct {
	Min  Point
	W, H float64
}

// Corner returns the i-th corner in counter-clockwise cyclic order
// starting from Min: (Min), (Min+W,·), (Min+W,·+H), (·,Min+H).
// The index is taken modulo 4.
func (b Box) Corner(i int) Point {
	switch ((i % 4) + 4) % 4 {
	case 0:
		return b.Min
	case 1:
		return Point{X: b.Min.X + b.W, Y: b.Min.Y}
	case 2:
		return Point{X: b.Min.X + b.W, Y: b.Min.Y + b.H}
	default:
		return Point{X: b.Min.X, Y: b.Min.Y + b.H}
	}
}

// Corners returns all four corners in cyclic order. The boundary edge i
// runs from corner i to corner (i+1)%4.
func (b Box) Corners() [4]Point {
	return [4]Point{b.Corner(0), b.Corner(1), b.Corner(2), b.Corner(3)}
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{X: b.Min.X + b.W/2, Y: b.Min.Y + b.H/2}
}

// MinWidth returns the smaller of the two side lengths.
func (b Box) MinWidth() float64 {
	if b.W < b.H {
		return b.W
	}
	return b.H
}

// Contains reports whether p lies inside the box, expanded by tol on
// every side.
func (b Box) Contains(p Point, tol float64) bool {
	return p.X >= b.Min.X-tol && p.X <= b.Min.X+b.W+tol &&
		p.Y >= b.Min.Y-tol && p.Y <= b.Min.Y+b.H+tol
}

// Split divides the box into four equal quadrants, ordered like the
// corners: bottom-left, bottom-right, top-right, top-left.
func (b Box) Split() [4]Box {
	hw, hh := b.W/2, b.H/2
	return [4]Box{
		{Min: b.Min, W: hw, H: hh},
		{Min: Point{X: b.Min.X + hw, Y: b.Min.Y}, W: hw, H: hh},
		{Min: Point{X: b.Min.X + hw, Y: b.Min.Y + hh}, W: hw, H: hh},
		{Min: Point{X: b.Min.X, Y: b.Min.Y + hh}, W: hw, H: hh},
	}
}
