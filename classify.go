package conic

// Kind classifies a second-degree curve.
type Kind int

const (
	// Degenerate covers line pairs, double lines, single points and the
	// empty set: the full discriminant vanishes.
	Degenerate Kind = iota
	Ellipse
	Circle
	// ImaginaryEllipse has an elliptic quadratic part but no real points.
	ImaginaryEllipse
	Hyperbola
	Parabola
)

var kindNames = [...]string{
	Degenerate:       "Degenerate",
	Ellipse:          "Ellipse",
	Circle:           "Circle",
	ImaginaryEllipse: "Imaginary ellipse",
	Hyperbola:        "Hyperbola",
	Parabola:         "Parabola",
}

// String returns the English name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Classify determines the kind of the conic from the determinant of the
// quadratic part and the discriminant of the full form.
func Classify(c Coefficients) Kind {
	if nearZero(c.Discriminant()) {
		return Degenerate
	}

	d := c.Determinant()
	switch {
	case nearZero(d):
		return Parabola
	case d < 0:
		return Hyperbola
	case c.A11*c.Discriminant() > 0:
		return ImaginaryEllipse
	case nearZero(c.A12) && nearZero(c.A11-c.A22):
		return Circle
	default:
		return Ellipse
	}
}
