package affine

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestMatrixAlgebraLaws(t *testing.T) {
	a := RotationZ(math.Pi / 3)
	b := Translation(1, 2, 3)
	c := Scaling(2, 3, 4)

	alg := Algebra{}
	if !alg.Combine(alg.Identity(), a).ApproxEqual(a, eps) {
		t.Error("identity is not a left identity")
	}
	if !alg.Combine(a, alg.Identity()).ApproxEqual(a, eps) {
		t.Error("identity is not a right identity")
	}
	left := alg.Combine(alg.Combine(a, b), c)
	right := alg.Combine(a, alg.Combine(b, c))
	if !left.ApproxEqual(right, eps) {
		t.Error("combine is not associative")
	}
}

func TestRotationThenTranslationIsNotCommutative(t *testing.T) {
	rot := NewRotate(AxisZ, math.Pi/2)
	mov := NewTranslate(1, 0, 0)

	g1 := NewGroup()
	g1.Add("r", rot)
	g1.Add("t", mov)

	g2 := NewGroup()
	g2.Add("t", NewTranslate(1, 0, 0))
	g2.Add("r", NewRotate(AxisZ, math.Pi/2))

	if g1.Operand().ApproxEqual(g2.Operand(), eps) {
		t.Fatal("swapping rotation and translation gave the same matrix")
	}

	// g1 composes t·r: translate, then rotate.
	x, y, _ := g1.Operand().TransformPoint(1, 0, 0)
	if math.Abs(x) > eps || math.Abs(y-2) > eps {
		t.Errorf("g1 maps (1,0,0) to (%g,%g), want (0,2)", x, y)
	}
	// g2 composes r·t: rotate, then translate.
	x, y, _ = g2.Operand().TransformPoint(1, 0, 0)
	if math.Abs(x-1) > eps || math.Abs(y-1) > eps {
		t.Errorf("g2 maps (1,0,0) to (%g,%g), want (1,1)", x, y)
	}
}

func TestRotationsCompose(t *testing.T) {
	s := NewStack()
	s.Push("a", NewRotate(AxisZ, math.Pi/4))
	s.Push("b", NewRotate(AxisZ, math.Pi/4))
	if !s.Operand().ApproxEqual(RotationZ(math.Pi/2), eps) {
		t.Errorf("two 45° rotations = %v, want 90°", s.Operand())
	}
}

func TestLazyPrimitivesInvalidateChain(t *testing.T) {
	tr := NewTranslate(1, 0, 0)
	s := NewStack()
	s.Push("t", tr)
	if !s.Operand().ApproxEqual(Translation(1, 0, 0), eps) {
		t.Fatalf("Operand() = %v", s.Operand())
	}

	tr.SetOffset(0, 5, 0)
	if !tr.Stale() {
		t.Error("SetOffset should leave the matrix stale until read")
	}
	if !s.Operand().ApproxEqual(Translation(0, 5, 0), eps) {
		t.Errorf("Operand() after SetOffset = %v", s.Operand())
	}
}

func TestSetExtractsParameters(t *testing.T) {
	tr := NewTranslate(0, 0, 0)
	tr.Set(Translation(4, 5, 6))
	if x, y, z := tr.Offset(); x != 4 || y != 5 || z != 6 {
		t.Errorf("Offset() = %g,%g,%g, want 4,5,6", x, y, z)
	}
	if tr.Stale() {
		t.Error("Set should mark the matrix fresh")
	}

	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		r := NewRotate(axis, 0)
		want := NewRotate(axis, 0.7).Operand()
		r.Set(want)
		if math.Abs(r.Angle()-0.7) > eps {
			t.Errorf("axis %v: Angle() = %g, want 0.7", axis, r.Angle())
		}
	}

	sc := NewScale(1, 1, 1)
	sc.Set(Scaling(2, 3, 4))
	if x, y, z := sc.Factors(); x != 2 || y != 3 || z != 4 {
		t.Errorf("Factors() = %g,%g,%g, want 2,3,4", x, y, z)
	}
}

func TestApplyToDevice(t *testing.T) {
	rec := NewRecorder()
	s := NewStack()

	Apply(rec, SlotWorld, s)
	if m, ok := rec.Transform(SlotWorld); !ok || !m.IsIdentity() {
		t.Errorf("empty stack applied %v, want identity", m)
	}

	s.Push("scale", NewScale(2, 2, 2))
	Apply(rec, SlotView, s)
	if m, _ := rec.Transform(SlotView); !m.ApproxEqual(Scaling(2, 2, 2), eps) {
		t.Errorf("applied %v, want scaling", m)
	}
	if _, ok := rec.Transform(SlotProjection); ok {
		t.Error("projection slot should be untouched")
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in   string
		want Axis
		ok   bool
	}{
		{"x", AxisX, true},
		{"Y", AxisY, true},
		{"z", AxisZ, true},
		{"w", AxisZ, false},
	}
	for _, tt := range tests {
		got, ok := ParseAxis(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAxis(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMatrixRowsFormatting(t *testing.T) {
	rows := Identity().Rows(1)
	if rows[0] != "1.0 0.0 0.0 0.0" {
		t.Errorf("Rows()[0] = %q", rows[0])
	}
	rows = Scaling(-1e-9, 1, 1).Rows(2)
	if rows[0] != "0.00 0.00 0.00 0.00" {
		t.Errorf("Rows()[0] = %q, want negative zero suppressed", rows[0])
	}
}
