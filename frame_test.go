package conic

import (
	"math"
	"testing"
)

func TestComputeDefaultScenario(t *testing.T) {
	f := Compute(DefaultCoefficients, NewViewport(400, 300))

	if f.Geometry.Theta != math.Pi/4 {
		t.Errorf("Theta = %v, want π/4", f.Geometry.Theta)
	}
	if p, ok := f.Geometry.Translation(); !ok || p != Pt(0, 0) {
		t.Errorf("Translation() = %v, %v, want (0, 0), true", p, ok)
	}
	if !f.HasExact || f.Exact.Cos.String() != "√2/2" || f.Exact.Sin.String() != "√2/2" {
		t.Errorf("exact form = %v (present %v), want √2/2, √2/2", f.Exact, f.HasExact)
	}
	if f.Field.Empty() {
		t.Error("default ellipse rasterized empty")
	}
	if o, ok := f.Origin(); !ok || o != Pt(200, 150) {
		t.Errorf("Origin() = %v, %v, want (200, 150)", o, ok)
	}
}

func TestComputeUnitCircle(t *testing.T) {
	f := Compute(Coefficients{A11: 1, A22: 1, C: -1}, NewViewport(120, 120))

	if f.Geometry.Theta != 0 || f.Geometry.IsVertex {
		t.Errorf("Theta=%v IsVertex=%v, want 0, false", f.Geometry.Theta, f.Geometry.IsVertex)
	}
	if f.Exact.Cos.String() != "1" || f.Exact.Sin.String() != "0" {
		t.Errorf("exact = (%s, %s), want (1, 0)", f.Exact.Cos, f.Exact.Sin)
	}
	if f.Kind != Circle {
		t.Errorf("Kind = %v, want Circle", f.Kind)
	}
	cos, sin := f.CosSin()
	if cos != 1 || sin != 0 {
		t.Errorf("CosSin() = %v, %v, want 1, 0", cos, sin)
	}
}

func TestComputeParabolaScenario(t *testing.T) {
	f := Compute(Coefficients{A11: 1, B2: -1}, NewViewport(100, 100))

	if !f.Geometry.IsVertex || f.Geometry.Theta != 0 {
		t.Errorf("IsVertex=%v Theta=%v, want true, 0", f.Geometry.IsVertex, f.Geometry.Theta)
	}
	p, ok := f.Geometry.Translation()
	if !ok || !almostEqual(p.X, 0, 1e-12) || !almostEqual(p.Y, 0, 1e-12) {
		t.Errorf("vertex = %v, %v, want (0, 0)", p, ok)
	}
	if f.Kind != Parabola {
		t.Errorf("Kind = %v, want Parabola", f.Kind)
	}
}
