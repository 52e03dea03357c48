package conic

import "math"

// Matrix is a 2D affine map in row-major form:
//
//	x' = A·x + B·y + C
//	y' = D·x + E·y + F
//
// Geometry.Rotation returns one mapping the primed frame to the global frame;
// Viewport.Transform returns one mapping model coordinates to device pixels.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Translate returns the map p -> p + (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns the map (px, py) -> (x·px, y·py). A negative y flips the
// vertical axis.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns the counter-clockwise rotation by angle radians about the
// origin, with columns (cos, sin) and (-sin, cos).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Compose returns the map that applies n first and then m.
func (m Matrix) Compose(n Matrix) Matrix {
	o := m.Apply(Point{X: n.C, Y: n.F})
	return Matrix{
		A: m.A*n.A + m.B*n.D, B: m.A*n.B + m.B*n.E, C: o.X,
		D: m.D*n.A + m.E*n.D, E: m.D*n.B + m.E*n.E, F: o.Y,
	}
}

// Apply maps p.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse map. It reports false, with a zero Matrix, when
// the linear part is singular or not finite.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Det()
	if !isFinite(det) || math.Abs(det) < 1e-12 {
		return Matrix{}, false
	}
	inv := Matrix{
		A: m.E / det, B: -m.B / det,
		D: -m.D / det, E: m.A / det,
	}
	// The offset is -L⁻¹·(C, F).
	o := inv.Apply(Point{X: m.C, Y: m.F})
	inv.C, inv.F = -o.X, -o.Y
	return inv, true
}
