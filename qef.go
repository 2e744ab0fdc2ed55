package contour

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// qefCondTol is the singular-value ratio below which the plane system is
// treated as rank-deficient (e.g. all sample normals parallel).
const qefCondTol = 1e-9

// Sentinel vertices mirroring the two residual sentinels: +Inf means
// "definitely invalid, keep refining", NaN means "indeterminate".
var (
	vertexInvalid = Point{X: math.Inf(1), Y: math.Inf(1)}
	vertexUndef   = Point{X: math.NaN(), Y: math.NaN()}
)

// solveQEF minimizes the quadratic error function of the given Hermite
// samples. Each sample (p_i, n_i) contributes the plane constraint
// n_i·x = n_i·p_i; the rows n_i are stacked into a matrix and the
// least-squares solution is computed by SVD. ok is false when the
// stacked system is singular or ill-conditioned.
//
// The caller guarantees len(points) == len(normals) >= 2.
func solveQEF(points, normals []Point) (x Point, ok bool) {
	a := mat.NewDense(len(normals), 2, nil)
	b := mat.NewDense(len(normals), 1, nil)
	for i, n := range normals {
		a.SetRow(i, []float64{n.X, n.Y})
		b.Set(i, 0, n.Dot(points[i]))
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return vertexUndef, false
	}
	sv := svd.Values(nil)
	if sv[0] == 0 || sv[1] <= qefCondTol*sv[0] {
		return vertexUndef, false
	}

	var sol mat.Dense
	svd.SolveTo(&sol, b, 2)
	return Point{X: sol.At(0, 0), Y: sol.At(1, 0)}, true
}

// solve computes the representative vertex and residual for the
// accumulated Hermite samples, applying the degeneracy rules:
//
//   - fewer than 2 samples: the system is under-constrained, vertex and
//     residual become the +Inf sentinel.
//   - singular solve: NaN sentinel.
//   - the solution coincides with an input point (within tol) while more
//     than two samples exist: that sample is a degenerate corner-aligned
//     contribution and is dropped, then the system is re-solved.
//   - the solution lies outside the owning box (within tol): +Inf
//     sentinel. A vertex must never be placed outside its cell; further
//     refinement is preferred instead.
//
// On success the residual is the oracle distance at the vertex.
func (d *CellData) solve(o Oracle, b Box, tol float64) {
	if len(d.Points) < 2 {
		d.Vertex, d.Residual = vertexInvalid, math.Inf(1)
		return
	}

	x, ok := solveQEF(d.Points, d.Normals)
	if !ok {
		d.Vertex, d.Residual = vertexUndef, math.NaN()
		return
	}

	if len(d.Points) > 2 {
		for i, p := range d.Points {
			if x.Distance(p) > tol {
				continue
			}
			d.Edges = append(d.Edges[:i], d.Edges[i+1:]...)
			d.Points = append(d.Points[:i], d.Points[i+1:]...)
			d.Normals = append(d.Normals[:i], d.Normals[i+1:]...)
			if x, ok = solveQEF(d.Points, d.Normals); !ok {
				d.Vertex, d.Residual = vertexUndef, math.NaN()
				return
			}
			break
		}
	}

	if !b.Contains(x, tol) {
		d.Vertex, d.Residual = vertexInvalid, math.Inf(1)
		return
	}

	d.Vertex = x
	d.Residual = o.Distance(x)
}
