package rast

import "testing"

func TestVec2_Arithmetic(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -4)

	if got := a.Add(b); got != V2(4, -2) {
		t.Errorf("Add = %v, want (4,-2)", got)
	}
	if got := a.Sub(b); got != V2(-2, 6) {
		t.Errorf("Sub = %v, want (-2,6)", got)
	}
	if got := a.Mul(2); got != V2(2, 4) {
		t.Errorf("Mul = %v, want (2,4)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
}

func TestVec2_Cross(t *testing.T) {
	tests := []struct {
		name string
		v, w Vec2
		want float32
	}{
		{"unit axes", V2(1, 0), V2(0, 1), 1},
		{"reversed", V2(0, 1), V2(1, 0), -1},
		{"parallel", V2(2, 2), V2(3, 3), 0},
		{"general", V2(2, 1), V2(1, 3), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Cross(tt.w); got != tt.want {
				t.Errorf("Cross = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2_Length(t *testing.T) {
	if got := V2(3, 4).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := V2(0, 0).Length(); got != 0 {
		t.Errorf("Length of zero = %v, want 0", got)
	}
}

func TestVec2_Lerp(t *testing.T) {
	a := V2(0, 0)
	b := V2(10, -10)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != V2(5, -5) {
		t.Errorf("Lerp(0.5) = %v, want (5,-5)", got)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	if got := a.Add(b); got != V3(5, 7, 9) {
		t.Errorf("Add = %v, want (5,7,9)", got)
	}
	if got := a.Sub(b); got != V3(-3, -3, -3) {
		t.Errorf("Sub = %v, want (-3,-3,-3)", got)
	}
	if got := a.Mul(-1); got != V3(-1, -2, -3) {
		t.Errorf("Mul = %v, want (-1,-2,-3)", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := V3(2, 3, 6).Length(); got != 7 {
		t.Errorf("Length = %v, want 7", got)
	}
}

func TestVec3_Approx(t *testing.T) {
	a := V3(1, 2, 3)
	if !a.Approx(V3(1.0001, 2, 3), 0.001) {
		t.Error("Approx within epsilon returned false")
	}
	if a.Approx(V3(1.1, 2, 3), 0.001) {
		t.Error("Approx outside epsilon returned true")
	}
}
