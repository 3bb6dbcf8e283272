package raster

import "testing"

func TestEdgeFunction_Sign(t *testing.T) {
	v0 := Vec2{X: 0, Y: 0}
	v1 := Vec2{X: 1, Y: 0}

	tests := []struct {
		name  string
		point Vec2
		want  int // sign: -1, 0, +1
	}{
		{"left of edge", Vec2{X: 0.5, Y: -0.1}, +1},
		{"right of edge", Vec2{X: 0.5, Y: 0.1}, -1},
		{"on edge", Vec2{X: 0.5, Y: 0}, 0},
		{"on start vertex", Vec2{X: 0, Y: 0}, 0},
		{"on end vertex", Vec2{X: 1, Y: 0}, 0},
		{"beyond edge but collinear", Vec2{X: 2, Y: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EdgeFunction(v0, v1, tt.point)
			switch {
			case tt.want > 0 && got <= 0:
				t.Errorf("EdgeFunction(%v) = %v, want positive", tt.point, got)
			case tt.want < 0 && got >= 0:
				t.Errorf("EdgeFunction(%v) = %v, want negative", tt.point, got)
			case tt.want == 0 && got != 0:
				t.Errorf("EdgeFunction(%v) = %v, want 0", tt.point, got)
			}
		})
	}
}

func TestEdgeFunction_SignedArea(t *testing.T) {
	// The edge function is the signed parallelogram area, so swapping the
	// edge direction negates it.
	v0 := Vec2{X: 1, Y: 2}
	v1 := Vec2{X: 4, Y: 3}
	p := Vec2{X: 2, Y: 5}

	forward := EdgeFunction(v0, v1, p)
	backward := EdgeFunction(v1, v0, p)

	if forward != -backward {
		t.Errorf("EdgeFunction not antisymmetric: forward=%v backward=%v", forward, backward)
	}
}
