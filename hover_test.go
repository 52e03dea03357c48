package conic

import (
	"math"
	"testing"
)

func TestHitTest(t *testing.T) {
	origin := Pt(100, 100)
	tests := []struct {
		name    string
		pointer Point
		theta   float64
		want    Axis
	}{
		{"on origin, tie goes to x'", origin, 0, AxisX},
		{"on origin rotated, tie goes to x'", origin, math.Pi / 4, AxisX},
		{"on x' axis far away", Pt(400, 100), 0, AxisX},
		{"on y' axis", Pt(100, 10), 0, AxisY},
		{"near x' axis", Pt(160, 110), 0, AxisX},
		{"near both, y' closer", Pt(105, 115), 0, AxisY},
		{"equidistant inside threshold", Pt(110, 110), 0, AxisX},
		{"far from both", Pt(150, 150), 0, AxisNone},
		{"just outside threshold", Pt(200, 120), 0, AxisNone},
		// At θ=π/4 the x' axis runs up-right on screen.
		{"on rotated x' axis", Pt(100+50, 100-50), math.Pi / 4, AxisX},
		{"on rotated y' axis", Pt(100+50, 100+50), math.Pi / 4, AxisY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTest(tt.pointer, origin, tt.theta, HoverThreshold); got != tt.want {
				dx, dy := AxisDistances(tt.pointer, origin, tt.theta)
				t.Errorf("HitTest(%v) = %v, want %v (distX=%v distY=%v)", tt.pointer, got, tt.want, dx, dy)
			}
		})
	}
}

func TestAxisDistances(t *testing.T) {
	dx, dy := AxisDistances(Pt(130, 60), Pt(100, 100), 0)
	if !almostEqual(dx, 40, 1e-12) || !almostEqual(dy, 30, 1e-12) {
		t.Errorf("AxisDistances = (%v, %v), want (40, 30)", dx, dy)
	}
}

func TestHoverStateMachine(t *testing.T) {
	f := Compute(Coefficients{A11: 1, A22: 1, C: -1}, NewViewport(200, 200))
	var h Hover

	if h.Axis() != AxisNone {
		t.Fatalf("zero Hover = %v, want none", h.Axis())
	}
	if !h.Move(Pt(180, 101), f) || h.Axis() != AxisX {
		t.Fatalf("move onto x' axis: state %v, want x'", h.Axis())
	}
	if h.Move(Pt(170, 99), f) {
		t.Error("move along x' axis reported a change")
	}
	if !h.Move(Pt(102, 20), f) || h.Axis() != AxisY {
		t.Fatalf("move onto y' axis: state %v, want y'", h.Axis())
	}
	if !h.Leave() || h.Axis() != AxisNone {
		t.Fatalf("leave: state %v, want none", h.Axis())
	}
	if h.Leave() {
		t.Error("second leave reported a change")
	}
}

func TestHoverThresholdScalesWithDPR(t *testing.T) {
	c := Coefficients{A11: 1, A22: 1, C: -1}
	pointer := Pt(180, 130) // 30 px below the x' axis

	var h Hover
	h.Move(pointer, Compute(c, Viewport{Width: 200, Height: 200, DPR: 1}))
	if h.Axis() != AxisNone {
		t.Errorf("dpr 1: state %v, want none", h.Axis())
	}
	h.Move(pointer, Compute(c, Viewport{Width: 200, Height: 200, DPR: 2}))
	if h.Axis() != AxisX {
		t.Errorf("dpr 2: state %v, want x'", h.Axis())
	}
}

func TestHoverUndefinedOrigin(t *testing.T) {
	f := Compute(Coefficients{A11: 1e308, B1: 1e308, B2: 1}, NewViewport(50, 50))
	h := Hover{axis: AxisY}
	h.Move(Pt(25, 25), f)
	if h.Axis() != AxisNone {
		t.Errorf("undefined origin: state %v, want none", h.Axis())
	}
}
