package conic

import (
	"math"
	"testing"
)

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"no rotation", Rotate(0), Pt(3, -4), Pt(3, -4)},
		{"translate", Translate(10, 20), Pt(1, 2), Pt(11, 22)},
		{"scale flips y", Scale(2, -2), Pt(1, 1), Pt(2, -2)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Translate(5, 5).Compose(Scale(2, 2)), Pt(1, 1), Pt(7, 7)},
		{"translate then scale", Scale(2, 2).Compose(Translate(5, 5)), Pt(1, 1), Pt(12, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Apply(tt.in)
			if !almostEqual(got.X, tt.want.X, 1e-12) || !almostEqual(got.Y, tt.want.Y, 1e-12) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixDet(t *testing.T) {
	if got := Rotate(0.7).Det(); !almostEqual(got, 1, 1e-12) {
		t.Errorf("rotation det = %v, want 1", got)
	}
	if got := Scale(40, -40).Det(); got != -1600 {
		t.Errorf("viewport scale det = %v, want -1600", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(3, -2).Compose(Rotate(0.3)).Compose(Scale(40, -40))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert reported a singular map")
	}
	p := Pt(1.5, -0.25)
	back := inv.Apply(m.Apply(p))
	if !almostEqual(back.X, p.X, 1e-9) || !almostEqual(back.Y, p.Y, 1e-9) {
		t.Errorf("round trip = %v, want %v", back, p)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	for _, m := range []Matrix{
		Scale(0, 1),
		{A: 1, B: 2, D: 2, E: 4, C: 7},
		{A: math.Inf(1), E: 1},
		{A: math.NaN(), E: 1},
	} {
		got, ok := m.Invert()
		if ok {
			t.Errorf("Invert(%+v) reported ok", m)
		}
		if got != (Matrix{}) {
			t.Errorf("Invert(%+v) = %+v, want zero matrix", m, got)
		}
	}
}

func TestRotateMatchesPointRotate(t *testing.T) {
	for _, angle := range []float64{-math.Pi / 4, 0.1, 1, math.Pi / 4} {
		p := Pt(2, 1)
		a := Rotate(angle).Apply(p)
		b := p.Rotate(angle)
		if !almostEqual(a.X, b.X, 1e-12) || !almostEqual(a.Y, b.Y, 1e-12) {
			t.Errorf("angle %v: matrix %v, point %v", angle, a, b)
		}
	}
}
