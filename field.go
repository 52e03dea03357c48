package conic

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// Field is the rasterized zero set of a conic: one coverage byte per device
// pixel, 0 meaning "not on the curve".
type Field struct {
	width  int
	height int
	data   []uint8
	hits   int
}

// Rasterize samples c over every pixel of vp and returns the curve coverage.
//
// Each pixel centre maps to model coordinates x = (px-cx)/s, y = -(py-cy)/s.
// The implicit function and its analytic gradient give a distance estimate
// that is converted to pixels and fed through CurveCoverage. The viewport is
// read once, so sampling and the buffer always agree on (width, height).
func Rasterize(c Coefficients, vp Viewport) *Field {
	w, h := vp.Width, vp.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f := &Field{width: w, height: h, data: make([]uint8, w*h)}

	o := vp.Origin()
	s := vp.PixelScale()
	for py := 0; py < h; py++ {
		y := -(float64(py) - o.Y) / s
		row := f.data[py*w : (py+1)*w]
		for px := range row {
			x := (float64(px) - o.X) / s
			alpha, hit := CurveCoverage(CurveDistance(c, x, y) * s)
			if !hit {
				continue
			}
			row[px] = uint8(math.Round(255 * alpha))
			f.hits++
		}
	}

	Logger().Debug("conic: field rasterized",
		slog.Int("width", w), slog.Int("height", h), slog.Int("hits", f.hits))
	return f
}

// Width returns the field width.
func (f *Field) Width() int { return f.width }

// Height returns the field height.
func (f *Field) Height() int { return f.height }

// Bounds returns the field dimensions as an image.Rectangle.
func (f *Field) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At returns the coverage at (x, y).
// Returns 0 for coordinates outside the field bounds.
func (f *Field) At(x, y int) uint8 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.data[y*f.width+x]
}

// Data returns the underlying coverage slice.
func (f *Field) Data() []uint8 {
	return f.data
}

// Hits returns the number of pixels on the curve.
func (f *Field) Hits() int { return f.hits }

// Empty reports whether no pixel passed the curve threshold, i.e. the curve
// has no real points in view.
func (f *Field) Empty() bool { return f.hits == 0 }

// Alpha returns the coverage as an *image.Alpha sharing the field's buffer,
// suitable as a mask for draw.DrawMask.
func (f *Field) Alpha() *image.Alpha {
	return &image.Alpha{Pix: f.data, Stride: f.width, Rect: f.Bounds()}
}

// Composite paints col over pm using the field as an alpha mask.
func (f *Field) Composite(pm *Pixmap, col RGBA) {
	if f.width == 0 || f.height == 0 {
		return
	}
	draw.DrawMask(pm.View(), f.Bounds(), image.NewUniform(col.Color()), image.Point{}, f.Alpha(), image.Point{}, draw.Over)
}
