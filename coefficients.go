package conic

import (
	"math"
	"strconv"
	"strings"
)

// Coefficients defines one second-degree curve
//
//	A11·x² + A12·xy + A22·y² + B1·x + B2·y + C = 0
//
// Coefficients is a value type: a new value replaces the old one on every
// edit and all derived geometry is recomputed from it.
type Coefficients struct {
	A11 float64 // x²
	A12 float64 // xy
	A22 float64 // y²
	B1  float64 // x
	B2  float64 // y
	C   float64 // constant
}

// DefaultCoefficients is the rotated ellipse x² + xy + y² - 10 = 0.
var DefaultCoefficients = Coefficients{A11: 1, A12: 1, A22: 1, C: -10}

// Eval evaluates the implicit function f(x, y).
func (c Coefficients) Eval(x, y float64) float64 {
	return c.A11*x*x + c.A12*x*y + c.A22*y*y + c.B1*x + c.B2*y + c.C
}

// Gradient returns the exact partial derivatives (∂f/∂x, ∂f/∂y) at (x, y).
func (c Coefficients) Gradient(x, y float64) Point {
	return Point{
		X: 2*c.A11*x + c.A12*y + c.B1,
		Y: c.A12*x + 2*c.A22*y + c.B2,
	}
}

// Determinant returns 4·A11·A22 - A12², the discriminant of the quadratic
// part. Its sign separates ellipses (>0), parabolas (0) and hyperbolas (<0).
func (c Coefficients) Determinant() float64 {
	return 4*c.A11*c.A22 - c.A12*c.A12
}

// Discriminant returns the determinant of the symmetric 3x3 matrix of the
// full quadratic form (scaled by 2). It is zero for degenerate conics.
func (c Coefficients) Discriminant() float64 {
	a, b, d := 2*c.A11, c.A12, c.B1
	e, f := 2*c.A22, c.B2
	g := 2 * c.C
	return a*(e*g-f*f) - b*(b*g-f*d) + d*(b*f-e*d)
}

// IsFinite reports whether all six coefficients are finite.
func (c Coefficients) IsFinite() bool {
	for _, v := range c.Values() {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// Values returns the coefficients in canonical order a11, a12, a22, b1, b2, c.
func (c Coefficients) Values() [6]float64 {
	return [6]float64{c.A11, c.A12, c.A22, c.B1, c.B2, c.C}
}

// CoefficientsFrom builds Coefficients from values in canonical order.
func CoefficientsFrom(v [6]float64) Coefficients {
	return Coefficients{A11: v[0], A12: v[1], A22: v[2], B1: v[3], B2: v[4], C: v[5]}
}

// String renders the equation, e.g. "x^2 + xy + y^2 - 10 = 0".
func (c Coefficients) String() string {
	terms := []struct {
		v   float64
		sym string
	}{
		{c.A11, "x^2"}, {c.A12, "xy"}, {c.A22, "y^2"},
		{c.B1, "x"}, {c.B2, "y"}, {c.C, ""},
	}

	var sb strings.Builder
	for _, t := range terms {
		if t.v == 0 {
			continue
		}
		mag := math.Abs(t.v)
		switch {
		case sb.Len() == 0 && t.v < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && t.v < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		if mag != 1 || t.sym == "" {
			sb.WriteString(strconv.FormatFloat(mag, 'g', -1, 64))
		}
		sb.WriteString(t.sym)
	}
	if sb.Len() == 0 {
		sb.WriteString("0")
	}
	sb.WriteString(" = 0")
	return sb.String()
}

// isFinite returns true if x is not NaN or Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// nearZero reports whether |x| is within Epsilon of zero.
func nearZero(x float64) bool {
	return math.Abs(x) <= Epsilon
}
