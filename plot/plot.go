// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package plot renders a conic analysis frame to a pixmap: background grid,
// the rasterized curve, the rotated principal axes through O', the main
// axes with integer ticks, and labels.
//
// Every call redraws the whole surface from the frame; there is no partial
// invalidation.
package plot

import (
	"image"
	"log/slog"
	"math"
	"strconv"

	"github.com/gogpu/conic"
)

// Option configures Render.
type Option func(*options)

type options struct {
	face   FaceFunc
	logger *slog.Logger
	labels bool
}

func defaultOptions() options {
	return options{
		face:   GoFace,
		labels: true,
	}
}

// WithFace sets the function used to obtain label faces.
//
// Example:
//
//	pm := plot.Render(f, hover, plot.WithFace(plot.BasicFace))
func WithFace(fn FaceFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.face = fn
		}
	}
}

// WithLogger sets the logger for this call. By default conic.Logger() is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithoutLabels skips all text.
func WithoutLabels() Option {
	return func(o *options) {
		o.labels = false
	}
}

const (
	dashOn, dashOff = 5, 5
	tickHalf        = 3
	dotRadius       = 3
	dotRadiusActive = 5
)

// Render draws f onto a new pixmap sized to f's viewport. hover selects the
// emphasized axis.
func Render(f *conic.Frame, hover conic.Axis, opts ...Option) *conic.Pixmap {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = conic.Logger()
	}

	vp := f.Viewport
	if vp.Empty() {
		return conic.NewPixmap(0, 0)
	}
	pm := conic.NewPixmap(vp.Width, vp.Height)
	pm.Clear(conic.Background)
	dst := pm.View()

	r := &renderer{f: f, pm: pm, dst: dst, o: o, hover: hover}
	r.grid()
	f.Field.Composite(pm, conic.CurveColor)
	r.rotatedAxes()
	r.mainAxes()
	if o.labels {
		r.axisNames()
	}

	log.Debug("plot: rendered",
		slog.Int("width", vp.Width), slog.Int("height", vp.Height),
		slog.String("hover", hover.String()), slog.Bool("empty", f.Field.Empty()))
	return pm
}

type renderer struct {
	f     *conic.Frame
	pm    *conic.Pixmap
	dst   *image.RGBA
	o     options
	hover conic.Axis
}

func (r *renderer) size() (w, h float64) {
	return float64(r.f.Viewport.Width), float64(r.f.Viewport.Height)
}

func (r *renderer) dpr() float64 { return r.f.Viewport.Ratio() }

// grid draws faint lines every model unit.
func (r *renderer) grid() {
	w, h := r.size()
	o := r.f.Viewport.Origin()
	step := r.f.Viewport.PixelScale()

	s := newStroke(r.dst.Rect, 1)
	for x := math.Mod(o.X, step); x < w; x += step {
		s.line(conic.Pt(x, 0), conic.Pt(x, h))
	}
	for y := math.Mod(o.Y, step); y < h; y += step {
		s.line(conic.Pt(0, y), conic.Pt(w, y))
	}
	s.draw(r.dst, conic.GridColor)
}

// rotatedAxes draws the x' and y' axes through O' and the O' marker.
func (r *renderer) rotatedAxes() {
	origin, ok := r.f.Origin()
	if !ok {
		return
	}
	w, h := r.size()
	axisLen := math.Max(w, h) * 1.5
	theta := r.f.Geometry.Theta

	// Screen y points down, so the model angle θ appears as -θ.
	toScreen := func(lx, ly float64) conic.Point {
		return conic.Pt(lx, ly).Rotate(-theta).Add(origin)
	}

	r.axis(conic.AxisX, toScreen(-axisLen, 0), toScreen(axisLen, 0))
	r.axis(conic.AxisY, toScreen(0, -axisLen), toScreen(0, axisLen))

	active := r.hover != conic.AxisNone
	col, radius := conic.AxisColor, float64(dotRadius)
	if active {
		col, radius = conic.ActiveColor, dotRadiusActive
	}
	r.dot(origin, radius*r.dpr(), col)

	if !r.o.labels {
		return
	}
	r.axisLabel(conic.AxisX, "x'", toScreen(axisLen/2-20, -5))
	r.axisLabel(conic.AxisY, "y'", toScreen(5, -axisLen/2+20))
	label(r.dst, r.o.face(Italic, 12*r.dpr()), "O'", origin.X+8, origin.Y-6, alignLeft, alignBaseline, col)
}

func (r *renderer) axis(a conic.Axis, p0, p1 conic.Point) {
	if r.hover == a {
		glow := newStroke(r.dst.Rect, 8)
		glow.line(p0, p1)
		glow.draw(r.dst, withAlpha(conic.ActiveColor, 0.2))

		s := newStroke(r.dst.Rect, 2)
		s.line(p0, p1)
		s.draw(r.dst, conic.ActiveColor)
		return
	}
	s := newStroke(r.dst.Rect, 1)
	s.dashed(p0, p1, dashOn, dashOff)
	s.draw(r.dst, conic.AxisColor)
}

func (r *renderer) axisLabel(a conic.Axis, text string, at conic.Point) {
	style, size, col := Italic, 12.0, conic.AxisColor
	if r.hover == a {
		style, size, col = BoldItalic, 16, conic.ActiveColor
	}
	label(r.dst, r.o.face(style, size*r.dpr()), text, at.X, at.Y, alignLeft, alignBaseline, col)
}

// dot fills a circle using signed-distance coverage.
func (r *renderer) dot(c conic.Point, radius float64, col conic.RGBA) {
	x0 := int(math.Floor(c.X - radius - 1))
	x1 := int(math.Ceil(c.X + radius + 1))
	y0 := int(math.Floor(c.Y - radius - 1))
	y1 := int(math.Ceil(c.Y + radius + 1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cov := conic.SDFFilledCircleCoverage(float64(x)+0.5, float64(y)+0.5, c.X, c.Y, radius)
			r.pm.BlendPixel(x, y, col, cov)
		}
	}
}

// mainAxes draws the global x and y axes with integer ticks.
func (r *renderer) mainAxes() {
	w, h := r.size()
	o := r.f.Viewport.Origin()
	step := r.f.Viewport.PixelScale()

	s := newStroke(r.dst.Rect, 2)
	s.line(conic.Pt(0, o.Y), conic.Pt(w, o.Y))
	s.line(conic.Pt(o.X, 0), conic.Pt(o.X, h))

	startX := int(math.Ceil(-o.X / step))
	endX := int(math.Floor((w - o.X) / step))
	for i := startX; i <= endX; i++ {
		if i == 0 {
			continue
		}
		x := o.X + float64(i)*step
		s.line(conic.Pt(x, o.Y-tickHalf), conic.Pt(x, o.Y+tickHalf))
	}

	minY := -int(math.Ceil((h - o.Y) / step))
	maxY := int(math.Floor(o.Y / step))
	for i := minY; i <= maxY; i++ {
		if i == 0 {
			continue
		}
		y := o.Y - float64(i)*step
		s.line(conic.Pt(o.X-tickHalf, y), conic.Pt(o.X+tickHalf, y))
	}
	s.draw(r.dst, conic.MainAxis)

	if !r.o.labels {
		return
	}
	face := r.o.face(Regular, 10*r.dpr())
	for i := startX; i <= endX; i++ {
		if i != 0 {
			label(r.dst, face, strconv.Itoa(i), o.X+float64(i)*step, o.Y+6, alignCenter, alignTop, conic.TickColor)
		}
	}
	for i := minY; i <= maxY; i++ {
		if i != 0 {
			label(r.dst, face, strconv.Itoa(i), o.X-6, o.Y-float64(i)*step, alignRight, alignMiddle, conic.TickColor)
		}
	}
}

// axisNames labels the global axes and origin.
func (r *renderer) axisNames() {
	w, _ := r.size()
	o := r.f.Viewport.Origin()
	face := r.o.face(BoldItalic, 16*r.dpr())

	label(r.dst, face, "x", w-10, o.Y-6, alignRight, alignBottom, conic.MainAxis)
	label(r.dst, face, "y", o.X+10, 10, alignLeft, alignTop, conic.MainAxis)
	label(r.dst, face, "O", o.X-6, o.Y+6, alignRight, alignTop, conic.MainAxis)
}

func withAlpha(c conic.RGBA, a float64) conic.RGBA {
	c.A = a
	return c
}
