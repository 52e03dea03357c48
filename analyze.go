package conic

import "math"

// Epsilon is the absolute tolerance used for every comparison against zero
// in the analyzer. A value v is treated as zero when |v| <= Epsilon.
const Epsilon = 1e-6

// Geometry describes the principal-axis frame of a conic.
//
// The primed frame is obtained by rotating the global frame by Theta and
// moving its origin to the center (or vertex, for parabolas):
//
//	(x, y)ᵀ = R(θ)·(x', y')ᵀ + T
type Geometry struct {
	// Theta is the rotation angle in radians that eliminates the xy term,
	// in the range (-π/4, π/4].
	Theta float64

	// Determinant is 4·a11·a22 - a12².
	Determinant float64

	// IsVertex is true when |Determinant| <= Epsilon, meaning the translation
	// is a parabola vertex rather than a unique center.
	IsVertex bool

	center  Point
	defined bool
}

// Translation returns the center (or vertex) in the global frame.
// ok is false when the parabola branch produced a non-finite result.
func (g Geometry) Translation() (p Point, ok bool) {
	return g.center, g.defined
}

// Cos returns cos θ.
func (g Geometry) Cos() float64 { return math.Cos(g.Theta) }

// Sin returns sin θ.
func (g Geometry) Sin() float64 { return math.Sin(g.Theta) }

// Degrees returns θ in degrees.
func (g Geometry) Degrees() float64 { return g.Theta * 180 / math.Pi }

// Rotation returns the affine map from the primed frame to the global frame.
// The translation part is zero when the translation is undefined.
func (g Geometry) Rotation() Matrix {
	m := Rotate(g.Theta)
	if t, ok := g.Translation(); ok {
		m.C, m.F = t.X, t.Y
	}
	return m
}

// Analyze computes the principal-axis geometry of c.
//
// Analyze is total: for any finite input it returns a Geometry, with an
// undefined translation rather than a panic when the parabola branch
// degenerates.
func Analyze(c Coefficients) Geometry {
	g := Geometry{
		Theta:       RotationAngle(c),
		Determinant: c.Determinant(),
	}

	if !nearZero(g.Determinant) {
		g.center = Point{
			X: (c.A12*c.B2 - 2*c.A22*c.B1) / g.Determinant,
			Y: (c.A12*c.B1 - 2*c.A11*c.B2) / g.Determinant,
		}
		g.defined = isFinite(g.center.X) && isFinite(g.center.Y)
		return g
	}

	g.IsVertex = true
	g.center = parabolaVertex(c, g.Theta)
	g.defined = isFinite(g.center.X) && isFinite(g.center.Y)
	return g
}

// RotationAngle returns the angle that eliminates the cross term.
func RotationAngle(c Coefficients) float64 {
	if nearZero(c.A12) {
		return 0
	}
	diff := c.A11 - c.A22
	if nearZero(diff) {
		// 45° case: atan(a12/0) is undefined
		if c.A12 > 0 {
			return math.Pi / 4
		}
		return -math.Pi / 4
	}
	return 0.5 * math.Atan(c.A12/diff)
}

// RotatedForm holds the coefficients of a conic expressed in a frame rotated
// by θ: A'x'² + C'y'² + D'x' + E'y' + F' = 0 (plus a residual cross term
// that vanishes when θ is the principal angle).
type RotatedForm struct {
	A, C, D, E, F float64
}

// Rotated returns the rotation-of-axes coefficients of c for angle theta,
// using x = x'cosθ - y'sinθ, y = x'sinθ + y'cosθ.
func Rotated(c Coefficients, theta float64) RotatedForm {
	cs, sn := math.Cos(theta), math.Sin(theta)
	return RotatedForm{
		A: c.A11*cs*cs + c.A12*cs*sn + c.A22*sn*sn,
		C: c.A11*sn*sn - c.A12*cs*sn + c.A22*cs*cs,
		D: c.B1*cs + c.B2*sn,
		E: -c.B1*sn + c.B2*cs,
		F: c.C,
	}
}

// parabolaVertex completes the square in the primed frame and rotates the
// result back. One primed coordinate stays 0 when its governing linear
// coefficient is negligible (line pairs and double lines).
func parabolaVertex(c Coefficients, theta float64) Point {
	r := Rotated(c, theta)

	var v Point // vertex in the primed frame
	if nearZero(r.C) {
		// A'x'² + D'x' + E'y' + F' = 0
		if !nearZero(r.A) {
			v.X = -r.D / (2 * r.A)
			k := r.F - r.D*r.D/(4*r.A)
			if !nearZero(r.E) {
				v.Y = -k / r.E
			}
		}
	} else {
		// C'y'² + D'x' + E'y' + F' = 0
		v.Y = -r.E / (2 * r.C)
		k := r.F - r.E*r.E/(4*r.C)
		if !nearZero(r.D) {
			v.X = -k / r.D
		}
	}

	return v.Rotate(theta)
}
