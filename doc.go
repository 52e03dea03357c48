// Package conic analyzes and rasterizes general second-degree plane curves.
//
// # Overview
//
// A curve is given by six real coefficients:
//
//	a11·x² + a12·xy + a22·y² + b1·x + b2·y + c = 0
//
// The package computes the principal-axis rotation that removes the xy term,
// the translation to the center (ellipses and hyperbolas) or vertex
// (parabolas), an exact surd form of the rotation when one exists, and a
// per-pixel coverage field of the curve for a device-pixel viewport.
//
// # Quick Start
//
//	c := conic.Coefficients{A11: 1, A12: 1, A22: 1, C: -10}
//	f := conic.Compute(c, conic.NewViewport(800, 600))
//
//	fmt.Println(f.Kind, f.Geometry.Degrees())
//	if t, ok := f.Geometry.Translation(); ok {
//	    fmt.Println("center", t)
//	}
//	if f.HasExact {
//	    fmt.Println("cos θ =", f.Exact.Cos, "sin θ =", f.Exact.Sin)
//	}
//
// # Recomputation Model
//
// Everything is a pure function of a Coefficients snapshot. There is no
// cache and no incremental update: callers build a new Frame whenever the
// coefficients, the viewport or the pointer change. The rasterizer visits
// every pixel, which handles all conic kinds uniformly, including
// degenerate ones.
//
// # Coordinate System
//
// Model coordinates use the mathematical orientation (y up) with the origin
// at the centre of the viewport. Pixel coordinates use screen orientation:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Tolerances
//
// Every comparison against zero in the analyzer uses the absolute tolerance
// Epsilon (1e-6). The exact-form resolver treats |a11-a22| and |a12| below
// 1e-9 as zero.
//
// Related packages: plot renders a Frame to a Pixmap, report formats it as
// text, input implements coefficient text fields, and explain asks a hosted
// language model for a prose explanation.
package conic
