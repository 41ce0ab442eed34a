package phase

import (
	"errors"
	"math"
	"testing"
)

func TestNewShape(t *testing.T) {
	c := New(5)
	if len(c) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(c))
	}
	if c.N() != 5 {
		t.Errorf("expected 5 particles, got %d", c.N())
	}
	if err := c.Validate(); err != nil {
		t.Errorf("fresh array failed validation: %v", err)
	}
}

func TestValidateComponentCount(t *testing.T) {
	c := Coords{make([]float64, 5), make([]float64, 5)}
	if err := c.Validate(); !errors.Is(err, ErrComponentCount) {
		t.Errorf("expected ErrComponentCount, got %v", err)
	}
}

func TestValidateRaggedRows(t *testing.T) {
	c := Coords{make([]float64, 5), make([]float64, 4), make([]float64, 5)}
	if err := c.Validate(); !errors.Is(err, ErrRaggedRows) {
		t.Errorf("expected ErrRaggedRows, got %v", err)
	}
}

func TestAtSetAt(t *testing.T) {
	c := New(3)
	c.SetAt(1, Vec3{1, 2, 3})
	if got := c.At(1); got != (Vec3{1, 2, 3}) {
		t.Errorf("At(1) = %v", got)
	}
	if got := c.At(0); got != (Vec3{}) {
		t.Errorf("At(0) = %v, expected zero", got)
	}
}

func TestCloneIndependent(t *testing.T) {
	c := FromVecs(Vec3{1, 0, 0}, Vec3{0, 1, 0})
	d := c.Clone()
	d.SetAt(0, Vec3{9, 9, 9})
	if c.At(0) != (Vec3{1, 0, 0}) {
		t.Error("clone shares storage with original")
	}
}

func TestVecOps(t *testing.T) {
	v := Vec3{3, 4, 0}
	if v.Norm() != 5 {
		t.Errorf("Norm = %g, expected 5", v.Norm())
	}
	if got := v.Dot(Vec3{1, 1, 1}); got != 7 {
		t.Errorf("Dot = %g, expected 7", got)
	}
	u := v.Normalize()
	if math.Abs(u.Norm()-1) > 1e-15 {
		t.Errorf("normalized norm = %g", u.Norm())
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector normalize = %v", got)
	}
	if got := v.Sub(Vec3{1, 1, 1}).Add(Vec3{1, 1, 1}); got != v {
		t.Errorf("Sub/Add round trip = %v", got)
	}
	if got := v.Scale(2); got != (Vec3{6, 8, 0}) {
		t.Errorf("Scale = %v", got)
	}
}
