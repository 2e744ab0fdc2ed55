package contour

import (
	"math"
	"testing"
)

func TestGoldenSection(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		lo   float64
		hi   float64
		want float64
	}{
		{"quadratic", func(x float64) float64 { return (x - 0.3) * (x - 0.3) }, 0, 1, 0.3},
		{"shifted quadratic", func(x float64) float64 { return x*x - 4*x }, -5, 5, 2},
		{"abs", func(x float64) float64 { return math.Abs(x - 0.7) }, 0, 1, 0.7},
		{"monotonic decreasing", func(x float64) float64 { return -x }, 0, 1, 1},
		{"monotonic increasing", func(x float64) float64 { return x }, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GoldenSection{}.Minimize(tt.f, tt.lo, tt.hi)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Minimize = %v, want %v", got, tt.want)
			}
			if got < tt.lo || got > tt.hi {
				t.Errorf("Minimize = %v escaped [%v, %v]", got, tt.lo, tt.hi)
			}
		})
	}
}

func TestGoldenSectionTol(t *testing.T) {
	f := func(x float64) float64 { return (x - 0.5) * (x - 0.5) }
	got := GoldenSection{Tol: 1e-3}.Minimize(f, 0, 1)
	if math.Abs(got-0.5) > 1e-3 {
		t.Errorf("Minimize with Tol=1e-3 = %v, want within 1e-3 of 0.5", got)
	}
}
