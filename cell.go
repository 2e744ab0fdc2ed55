package contour

import "math"

// CellData holds the Hermite samples gathered on one box and the QEF
// vertex computed from them. It is built exactly once, when the owning
// cell is created, and is immutable afterwards.
//
// The three sample slices are parallel: Edges[i] is the boundary edge
// index (corner i → corner (i+1)%4) on which the crossing Points[i] with
// unit normal Normals[i] was found. A CellData with no samples marks a
// box the surface was not detected in.
type CellData struct {
	Edges   []int
	Points  []Point
	Normals []Point

	// Vertex is the QEF minimizer, or a sentinel: (+Inf,+Inf) when the
	// system was under-constrained or the minimizer fell outside the box,
	// (NaN,NaN) when the solve was singular.
	Vertex Point

	// Residual is the oracle distance at Vertex, with the matching +Inf
	// or NaN sentinel on failure.
	Residual float64

	// corners caches the oracle distances at the four box corners so the
	// refinement probe does not re-query the oracle.
	corners [4]float64
}

// Empty reports whether no surface crossing was detected in the box.
func (d *CellData) Empty() bool { return len(d.Points) == 0 }

// Cell is one node of the subdivision tree. A leaf owns its CellData
// and no children; an internal cell owns exactly four equal quadrant
// children (its own CellData is retained but no longer consulted).
// The tree is built once by Build and is read-only afterwards.
type Cell struct {
	Box      Box
	Data     *CellData
	Children []*Cell
}

// IsLeaf reports whether the cell has no children.
func (c *Cell) IsLeaf() bool { return len(c.Children) == 0 }

// Walk visits the subtree rooted at c in pre-order. Returning false
// from fn skips the children of the current cell.
func (c *Cell) Walk(fn func(*Cell) bool) {
	if !fn(c) {
		return
	}
	for _, child := range c.Children {
		child.Walk(fn)
	}
}

// Leaves returns all leaf cells of the subtree in traversal order.
func (c *Cell) Leaves() []*Cell {
	var leaves []*Cell
	c.Walk(func(cell *Cell) bool {
		if cell.IsLeaf() {
			leaves = append(leaves, cell)
		}
		return true
	})
	return leaves
}

// Depth returns the height of the subtree: 0 for a leaf, else one more
// than the deepest child.
func (c *Cell) Depth() int {
	if c.IsLeaf() {
		return 0
	}
	deepest := 0
	for _, child := range c.Children {
		if d := child.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Vertices collects the finite QEF vertices of all surface-crossing
// leaves, paired with a unit normal averaged from each leaf's Hermite
// samples. Leaves with empty or sentinel-valued CellData contribute
// nothing.
func (c *Cell) Vertices() (points, normals []Point) {
	for _, leaf := range c.Leaves() {
		d := leaf.Data
		if d == nil || d.Empty() || !d.Vertex.IsFinite() {
			continue
		}
		var n Point
		for _, s := range d.Normals {
			n = n.Add(s)
		}
		points = append(points, d.Vertex)
		normals = append(normals, n.Normalize())
	}
	return points, normals
}

// buildCellData samples the oracle on the box boundary and assembles the
// cell's Hermite data.
//
// Corner distances are classified into negative, positive and on-surface
// (exact zero; negative zero counts as zero, never as a sign). A box
// whose corners all share one strict sign is on one side of the surface
// and yields empty data. A single zero corner among otherwise uniform
// strict signs means the surface merely grazes that corner, which is
// also treated as empty rather than crossing.
//
// Otherwise the four boundary edges are walked in cyclic order; every
// edge with a strict sign change, or with exactly one on-surface
// endpoint, contributes one Hermite sample. The QEF solve then fills
// Vertex and Residual.
func buildCellData(o Oracle, m Minimizer, b Box, tol float64) *CellData {
	d := &CellData{Vertex: vertexInvalid, Residual: math.Inf(1)}

	corners := b.Corners()
	var neg, pos, zero int
	for i, c := range corners {
		dist := o.Distance(c)
		d.corners[i] = dist
		switch {
		case dist < 0:
			neg++
		case dist > 0:
			pos++
		default:
			zero++
		}
	}

	uniform := neg == 0 || pos == 0
	if uniform && zero <= 1 {
		// One side of the surface, or a graze at a single corner.
		return d
	}

	for i := range corners {
		d1, d2 := d.corners[i], d.corners[(i+1)%4]
		crossing := (d1 < 0 && d2 > 0) || (d1 > 0 && d2 < 0)
		if !crossing && (d1 == 0) == (d2 == 0) {
			continue
		}
		p, n, ok := intersectEdge(o, m, corners[i], corners[(i+1)%4])
		if !ok {
			continue
		}
		d.Edges = append(d.Edges, i)
		d.Points = append(d.Points, p)
		d.Normals = append(d.Normals, n)
	}

	d.solve(o, b, tol)
	return d
}
