package types

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	a := NewVec2(3, -2)
	b := NewVec2(1, 4)

	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v, want {4 2}", got)
	}
	if got := a.Sub(b); got != (Vec2{2, -6}) {
		t.Errorf("Sub = %v, want {2 -6}", got)
	}
	if got := a.Mul(3); got != (Vec2{9, -6}) {
		t.Errorf("Mul = %v, want {9 -6}", got)
	}
	if got := a.LengthSq(); got != 13 {
		t.Errorf("LengthSq = %d, want 13", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %d, want -5", got)
	}
	if got := a.Manhattan(b); got != 8 {
		t.Errorf("Manhattan = %d, want 8", got)
	}
}

func TestVec2String(t *testing.T) {
	if got := NewVec2(1, 2).String(); got != "Vec2{X: 1, Y: 2}" {
		t.Errorf("String = %q", got)
	}
}
