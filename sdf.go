package conic

import "math"

const (
	// CurveBand is the half-width, in device pixels, of the band around the
	// zero set that is painted as curve.
	CurveBand = 1.5

	// curveAlphaFloor keeps pixels at the edge of the band visible.
	curveAlphaFloor = 0.2

	// gradientGuard keeps the distance estimate finite where ∇f vanishes.
	gradientGuard = 1e-6
)

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const sdfAntialiasWidth = 0.7

// CurveDistance approximates the distance, in model units, from (x, y) to
// the zero set of c using the first-order estimate |f| / |∇f|.
func CurveDistance(c Coefficients, x, y float64) float64 {
	f := c.Eval(x, y)
	g := c.Gradient(x, y)
	return math.Abs(f) / (g.Length() + gradientGuard)
}

// CurveCoverage converts a distance in device pixels into curve coverage.
// Inside the band the alpha falls off linearly with distance and is lifted
// by a fixed floor; outside the band the pixel is not part of the curve.
func CurveCoverage(distPx float64) (alpha float64, hit bool) {
	if !(distPx < CurveBand) {
		return 0, false
	}
	return math.Min(1, math.Max(0, CurveBand-distPx)+curveAlphaFloor), true
}

// SDFFilledCircleCoverage computes anti-aliased coverage for a filled circle
// using a signed distance field approach.
//
// Parameters:
//   - px, py: pixel center coordinates
//   - cx, cy: circle center
//   - radius: circle radius
//
// Returns a coverage value in [0, 1] where 1 means fully inside.
func SDFFilledCircleCoverage(px, py, cx, cy, radius float64) float64 {
	dist := math.Hypot(px-cx, py-cy)
	return smoothstepCoverage(dist - radius)
}

// smoothstepCoverage converts a signed distance to an anti-aliased coverage
// value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
// Otherwise       => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}
