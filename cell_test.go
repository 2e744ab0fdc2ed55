package contour

import (
	"math"
	"testing"
)

func TestBuildCellDataSignClassification(t *testing.T) {
	unit := Box{Min: Pt(0, 0), W: 1, H: 1}
	tests := []struct {
		name      string
		d         func(Point) float64
		wantEmpty bool
	}{
		{
			name:      "uniform positive",
			d:         func(p Point) float64 { return 5 },
			wantEmpty: true,
		},
		{
			name:      "uniform negative",
			d:         func(p Point) float64 { return -5 },
			wantEmpty: true,
		},
		{
			// Zero only at the (0,0) corner, positive elsewhere: the
			// surface grazes a single vertex and the box is empty.
			name:      "corner graze",
			d:         func(p Point) float64 { return p.X + p.Y },
			wantEmpty: true,
		},
		{
			// Negative zero must classify like zero, not like a sign.
			name: "negative zero graze",
			d: func(p Point) float64 {
				if p == Pt(0, 0) {
					return math.Copysign(0, -1)
				}
				return p.X + p.Y
			},
			wantEmpty: true,
		},
		{
			name:      "strict sign change",
			d:         func(p Point) float64 { return p.X - 0.5 },
			wantEmpty: false,
		},
		{
			// Zero corner with mixed strict signs elsewhere is a crossing,
			// not a graze.
			name:      "zero corner mixed signs",
			d:         func(p Point) float64 { return p.X - p.Y },
			wantEmpty: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := field{d: tt.d, n: func(Point) Point { return Pt(1, 0) }}
			data := buildCellData(o, GoldenSection{}, unit, 1e-6)
			if got := data.Empty(); got != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v (samples: %v)", got, tt.wantEmpty, data.Points)
			}
		})
	}
}

func TestBuildCellDataEdgeWalk(t *testing.T) {
	// A vertical line through the middle crosses the bottom and top
	// edges, giving exactly two samples at x = 0.5.
	unit := Box{Min: Pt(0, 0), W: 1, H: 1}
	data := buildCellData(vline(0.5), GoldenSection{}, unit, 1e-6)

	if len(data.Points) != 2 {
		t.Fatalf("samples = %d, want 2", len(data.Points))
	}
	if got, want := data.Edges[0], 0; got != want {
		t.Errorf("first crossing edge = %d, want %d (bottom)", got, want)
	}
	if got, want := data.Edges[1], 2; got != want {
		t.Errorf("second crossing edge = %d, want %d (top)", got, want)
	}
	for i, p := range data.Points {
		if math.Abs(p.X-0.5) > 1e-6 {
			t.Errorf("sample %d = %v, want x = 0.5", i, p)
		}
	}
	// Both normals are (1,0): the plane system is rank deficient, so the
	// vertex must be the indeterminate sentinel rather than an arbitrary
	// point on the line.
	if !math.IsNaN(data.Residual) {
		t.Errorf("Residual = %v, want NaN for parallel normals", data.Residual)
	}
}

func TestBuildCellDataZeroCornersShareEdge(t *testing.T) {
	// Surface along y = 0 touches two corners of the unit box exactly.
	o := field{
		d: func(p Point) float64 { return p.Y },
		n: func(Point) Point { return Pt(0, 1) },
	}
	unit := Box{Min: Pt(0, 0), W: 1, H: 1}
	data := buildCellData(o, GoldenSection{}, unit, 1e-6)
	if data.Empty() {
		t.Fatal("surface through two corners classified as empty")
	}
	for _, p := range data.Points {
		if p.Y != 0 {
			t.Errorf("sample %v, want a point on y = 0", p)
		}
	}
}

func TestCellAccessors(t *testing.T) {
	root := Build(Circle{Radius: 1},
		WithOrigin(Pt(-2, -2)),
		WithExtent(4, 4),
		WithATol(0.1),
		WithRTol(0.1),
		WithSurfCellMax(0.5),
	)

	var walked, leaves int
	root.Walk(func(c *Cell) bool {
		walked++
		if c.IsLeaf() {
			leaves++
		}
		return true
	})
	if got := len(root.Leaves()); got != leaves {
		t.Errorf("Leaves() = %d cells, Walk counted %d", got, leaves)
	}
	// A quadtree with L leaves has (4L-1)/3 nodes.
	if want := (4*leaves - 1) / 3; walked != want {
		t.Errorf("Walk visited %d cells, want %d for %d leaves", walked, want, leaves)
	}

	// Walk must honor an early cutoff.
	var cut int
	root.Walk(func(c *Cell) bool {
		cut++
		return false
	})
	if cut != 1 {
		t.Errorf("Walk with immediate cutoff visited %d cells, want 1", cut)
	}

	points, normals := root.Vertices()
	if len(points) == 0 {
		t.Fatal("Vertices() returned no points for a crossing surface")
	}
	if len(points) != len(normals) {
		t.Fatalf("Vertices() returned %d points but %d normals", len(points), len(normals))
	}
	for i, n := range normals {
		if math.Abs(n.Length()-1) > 1e-12 {
			t.Errorf("normal %d = %v, want unit length", i, n)
		}
		// Circle normals point radially outward.
		if n.Dot(points[i].Normalize()) < 0.9 {
			t.Errorf("normal %d = %v not outward at %v", i, n, points[i])
		}
	}
}
