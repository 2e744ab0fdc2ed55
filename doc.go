// Package contour extracts piecewise-linear approximations of implicit
// surfaces via adaptive Hermite dual contouring.
//
// # Overview
//
// An implicit surface is described by an Oracle: signed distance and
// unit normal queries at a point. Build recursively subdivides an
// axis-aligned domain box into a quadtree, splitting only where the
// local surface geometry cannot yet be captured by a single vertex.
// Each surface-crossing leaf receives one representative vertex, placed
// by minimizing a quadratic error function (QEF) assembled from Hermite
// samples (crossing point, unit normal) found on the cell's boundary
// edges.
//
// # Quick Start
//
//	import "github.com/gogpu/contour"
//
//	circle := contour.Circle{Radius: 1}
//	root := contour.Build(circle,
//		contour.WithOrigin(contour.Pt(-2, -2)),
//		contour.WithExtent(4, 4),
//		contour.WithATol(0.05),
//	)
//
//	points, normals := root.Vertices()
//
// # Geometric validity
//
// Three guarantees interact to keep the output well-formed: a QEF vertex
// is never placed outside its owning cell (an out-of-box minimizer is
// discarded and the cell refined instead), subdivision always terminates
// (widths strictly halve and the atol floor bounds the depth), and a
// cell is only reported empty when its corner distances prove the
// surface cannot cross it at the accepted resolution.
//
// # Numerical failure
//
// Construction never panics on numerical trouble. Degenerate situations
// are encoded in two sentinel values on CellData: +Inf marks a result
// that is definitely invalid and always worth refining away, NaN marks
// an indeterminate solve that is refined until the size floor and then
// accepted. Downstream consumers can rely on every finite vertex lying
// inside its cell.
//
// # Concurrency
//
// The tree is built by a pure recursive traversal with no shared mutable
// state across sibling subtrees. WithParallel fans the top tree levels
// out across goroutines; the oracle must then tolerate concurrent reads.
// The finished tree is read-only.
package contour
