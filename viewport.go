package conic

import "math"

// DefaultScale is the number of CSS pixels per model unit.
const DefaultScale = 40

// Viewport maps model coordinates onto a device-pixel grid. The model origin
// sits at the centre of the grid and the y axis points up.
type Viewport struct {
	// Width and Height are the grid dimensions in device pixels.
	Width, Height int

	// Scale is the number of CSS pixels per model unit. Zero means DefaultScale.
	Scale float64

	// DPR is the device pixel ratio. Zero means 1.
	DPR float64
}

// NewViewport returns a viewport with the default scale and a device pixel
// ratio of 1.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height, Scale: DefaultScale, DPR: 1}
}

// FromCSS sizes a viewport to a container measured in CSS pixels, flooring
// the device-pixel dimensions to integers.
func FromCSS(cssWidth, cssHeight, dpr float64) Viewport {
	if dpr <= 0 {
		dpr = 1
	}
	return Viewport{
		Width:  int(math.Floor(cssWidth * dpr)),
		Height: int(math.Floor(cssHeight * dpr)),
		Scale:  DefaultScale,
		DPR:    dpr,
	}
}

// Empty reports whether the viewport has no pixels.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Ratio returns the device pixel ratio, defaulting to 1.
func (v Viewport) Ratio() float64 {
	if v.DPR <= 0 {
		return 1
	}
	return v.DPR
}

// PixelScale returns the number of device pixels per model unit.
func (v Viewport) PixelScale() float64 {
	s := v.Scale
	if s <= 0 {
		s = DefaultScale
	}
	return s * v.Ratio()
}

// Origin returns the pixel position of the model origin.
func (v Viewport) Origin() Point {
	return Point{X: float64(v.Width) / 2, Y: float64(v.Height) / 2}
}

// Transform returns the model-to-pixel matrix.
func (v Viewport) Transform() Matrix {
	o := v.Origin()
	s := v.PixelScale()
	return Translate(o.X, o.Y).Compose(Scale(s, -s))
}

// ToPixel maps a model point to device pixels.
func (v Viewport) ToPixel(p Point) Point {
	return v.Transform().Apply(p)
}

// ToModel maps a device-pixel position to model coordinates. PixelScale is
// never zero, so the model-to-pixel map always inverts.
func (v Viewport) ToModel(p Point) Point {
	inv, _ := v.Transform().Invert()
	return inv.Apply(p)
}
