package contour

import "math"

// refinePolicy decides whether a cell captures the local surface
// geometry well enough to stay a leaf, or must split further.
type refinePolicy struct {
	rtol, atol  float64
	surfCellMax float64
}

// shouldRefine implements the subdivision criterion on the cell's
// minimum box width w and its CellData:
//
//   - w ≤ atol: terminal. The size floor always wins, which bounds the
//     recursion depth regardless of how the QEF behaved.
//   - empty CellData: a crossing may still hide inside the box when a
//     corner lies within w/√2 of the surface (the largest possible
//     distance from an interior point to a corner); probe the cached
//     corner distances and refine if any is that close.
//   - NaN residual (indeterminate solve): refine only while the box is
//     wider than surfCellMax, then accept defeat rather than loop
//     forever on a tiny degenerate cell.
//   - +Inf residual (definitely invalid): always refine.
//   - finite residual: refine while the box is wider than surfCellMax or
//     the residual is not approximately zero.
func (rp refinePolicy) shouldRefine(c *Cell) bool {
	w := c.Box.MinWidth()
	if w <= rp.atol {
		return false
	}

	d := c.Data
	if d.Empty() {
		bound := w / math.Sqrt2
		for _, dist := range d.corners {
			if math.Abs(dist) < bound {
				return true
			}
		}
		return false
	}

	switch {
	case math.IsNaN(d.Residual):
		return w > rp.surfCellMax
	case math.IsInf(d.Residual, 0):
		return true
	}

	return w > rp.surfCellMax || !rp.nearZero(d.Residual, w)
}

// nearZero reports whether the residual r is approximately zero at the
// scale of a cell of width w.
func (rp refinePolicy) nearZero(r, w float64) bool {
	r = math.Abs(r)
	return r <= rp.atol || r <= rp.rtol*w
}
