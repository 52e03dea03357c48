package conic

import "log/slog"

// Frame is one complete, synchronous analysis of a coefficient snapshot for
// a given viewport. Frames are never updated in place: every edit, pointer
// or resize event builds a new one.
type Frame struct {
	Coefficients Coefficients
	Viewport     Viewport
	Geometry     Geometry
	Kind         Kind

	// Exact is meaningful only when HasExact is true.
	Exact    ExactForm
	HasExact bool

	Field *Field
}

// Compute runs the analyzer, the exact-form resolver and the rasterizer on c.
func Compute(c Coefficients, vp Viewport) *Frame {
	g := Analyze(c)
	exact, ok := ResolveExact(g.Theta, c.A11-c.A22, c.A12)

	f := &Frame{
		Coefficients: c,
		Viewport:     vp,
		Geometry:     g,
		Kind:         Classify(c),
		Exact:        exact,
		HasExact:     ok,
		Field:        Rasterize(c, vp),
	}

	Logger().Debug("conic: frame computed",
		slog.String("equation", c.String()),
		slog.String("kind", f.Kind.String()),
		slog.Float64("theta", g.Theta),
		slog.Bool("vertex", g.IsVertex),
		slog.Bool("exact", ok),
		slog.Bool("empty", f.Field.Empty()))
	return f
}

// Origin returns the rotated origin O' in device pixels. ok is false when
// the translation is undefined.
func (f *Frame) Origin() (p Point, ok bool) {
	t, ok := f.Geometry.Translation()
	if !ok {
		return Point{}, false
	}
	p = f.Viewport.ToPixel(t)
	return p, p.IsFinite()
}

// CosSin returns cos θ and sin θ as decimals.
func (f *Frame) CosSin() (cos, sin float64) {
	return f.Geometry.Cos(), f.Geometry.Sin()
}
