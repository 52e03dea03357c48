// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plot

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/conic"
)

// stroke accumulates anti-aliased line segments into a single coverage
// rasterizer and composites them in one pass with a solid color.
type stroke struct {
	r      *vector.Rasterizer
	bounds image.Rectangle
	width  float64
	empty  bool
}

func newStroke(bounds image.Rectangle, width float64) *stroke {
	return &stroke{
		r:      vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
		bounds: bounds,
		width:  width,
		empty:  true,
	}
}

// line adds the segment p0-p1, clipped to the surface.
func (s *stroke) line(p0, p1 conic.Point) {
	t0, t1, ok := clip(p0, p1, s.clipRect())
	if !ok {
		return
	}
	d := p1.Sub(p0)
	s.quad(p0.Add(d.Mul(t0)), p0.Add(d.Mul(t1)))
}

// dashed adds p0-p1 as a dash pattern of on/off lengths in pixels. The
// pattern is anchored at p0 so clipping does not shift it.
func (s *stroke) dashed(p0, p1 conic.Point, on, off float64) {
	t0, t1, ok := clip(p0, p1, s.clipRect())
	if !ok {
		return
	}
	d := p1.Sub(p0)
	length := d.Length()
	if length == 0 {
		return
	}
	dir := d.Mul(1 / length)

	from, to := t0*length, t1*length
	period := on + off
	for pos := math.Floor(from/period) * period; pos < to; pos += period {
		a := math.Max(pos, from)
		b := math.Min(pos+on, to)
		if b > a {
			s.quad(p0.Add(dir.Mul(a)), p0.Add(dir.Mul(b)))
		}
	}
}

// quad rasterizes a segment as a rectangle of the stroke width.
func (s *stroke) quad(a, b conic.Point) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := conic.Pt(-d.Y/l, d.X/l).Mul(s.width / 2)

	p := []conic.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	s.r.MoveTo(float32(p[0].X), float32(p[0].Y))
	for _, q := range p[1:] {
		s.r.LineTo(float32(q.X), float32(q.Y))
	}
	s.r.ClosePath()
	s.empty = false
}

// draw composites the accumulated coverage onto dst.
func (s *stroke) draw(dst *image.RGBA, col conic.RGBA) {
	if s.empty {
		return
	}
	s.r.Draw(dst, s.bounds, image.NewUniform(col.NRGBA()), image.Point{})
}

// clipRect is the surface grown by the stroke width so that caps of
// clipped segments stay outside the visible area.
func (s *stroke) clipRect() [4]float64 {
	m := s.width + 1
	return [4]float64{
		float64(s.bounds.Min.X) - m, float64(s.bounds.Min.Y) - m,
		float64(s.bounds.Max.X) + m, float64(s.bounds.Max.Y) + m,
	}
}

// clip intersects the segment p0 + t·(p1-p0), t in [0, 1], with the
// rectangle {minX, minY, maxX, maxY} (Liang-Barsky) and returns the
// parameter interval of the visible part.
func clip(p0, p1 conic.Point, rect [4]float64) (t0, t1 float64, ok bool) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{p0.X - rect[0], rect[2] - p0.X, p0.Y - rect[1], rect[3] - p0.Y}

	t0, t1 = 0, 1
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}
