package contour

import "testing"

func TestBoxCornersCyclicOrder(t *testing.T) {
	b := Box{Min: Pt(1, 2), W: 3, H: 4}
	want := [4]Point{{1, 2}, {4, 2}, {4, 6}, {1, 6}}
	if got := b.Corners(); got != want {
		t.Errorf("Corners() = %v, want %v", got, want)
	}
	// Corner(i) must agree with Corners() and wrap modulo 4.
	for i := 0; i < 8; i++ {
		if got, want := b.Corner(i), want[i%4]; got != want {
			t.Errorf("Corner(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestBoxSplit(t *testing.T) {
	b := Box{Min: Pt(0, 0), W: 2, H: 2}
	quads := b.Split()

	want := [4]Box{
		{Min: Pt(0, 0), W: 1, H: 1},
		{Min: Pt(1, 0), W: 1, H: 1},
		{Min: Pt(1, 1), W: 1, H: 1},
		{Min: Pt(0, 1), W: 1, H: 1},
	}
	if quads != want {
		t.Errorf("Split() = %v, want %v", quads, want)
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{Min: Pt(0, 0), W: 1, H: 1}
	tests := []struct {
		name string
		p    Point
		tol  float64
		want bool
	}{
		{"center", Pt(0.5, 0.5), 0, true},
		{"corner", Pt(0, 0), 0, true},
		{"outside x", Pt(1.1, 0.5), 0, false},
		{"outside y", Pt(0.5, -0.1), 0, false},
		{"outside within tol", Pt(1.05, 0.5), 0.1, true},
		{"outside beyond tol", Pt(1.2, 0.5), 0.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p, tt.tol); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.p, tt.tol, got, tt.want)
			}
		})
	}
}

func TestBoxMinWidth(t *testing.T) {
	if got := (Box{W: 2, H: 3}).MinWidth(); got != 2 {
		t.Errorf("MinWidth() = %v, want 2", got)
	}
	if got := (Box{W: 5, H: 3}).MinWidth(); got != 3 {
		t.Errorf("MinWidth() = %v, want 3", got)
	}
}

func TestBoxCenter(t *testing.T) {
	b := Box{Min: Pt(-1, -1), W: 2, H: 4}
	if got, want := b.Center(), Pt(0, 1); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}
