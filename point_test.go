package contour

import (
	"math"
	"testing"
)

func TestPointNormalize(t *testing.T) {
	n := Pt(3, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-15 {
		t.Errorf("Normalize() length = %v, want 1", n.Length())
	}
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("zero vector Normalize() = %v, want zero vector", got)
	}
}

func TestPointLerp(t *testing.T) {
	p, q := Pt(0, 0), Pt(2, 4)
	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
	if got, want := p.Lerp(q, 0.5), Pt(1, 2); got != want {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
}

func TestPointIsFinite(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"finite", Pt(1, -2), true},
		{"pos inf", Pt(math.Inf(1), 0), false},
		{"neg inf", Pt(0, math.Inf(-1)), false},
		{"nan", Pt(math.NaN(), 0), false},
		{"inf sentinel", vertexInvalid, false},
		{"nan sentinel", vertexUndef, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsFinite(); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}
