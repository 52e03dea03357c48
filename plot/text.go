// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plot

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/conic"
)

// Style selects one of the label typefaces.
type Style int

const (
	Regular    Style = iota // tick labels
	Italic                  // x', y' labels
	BoldItalic              // axis names, hovered labels
)

var (
	fontsOnce sync.Once
	fonts     [3]*opentype.Font
)

func parseFonts() {
	for i, ttf := range [][]byte{goregular.TTF, goitalic.TTF, gobolditalic.TTF} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			conic.Logger().Warn("plot: parse font", "style", i, "err", err)
			continue
		}
		fonts[i] = f
	}
}

// FaceFunc returns the face for a style at a size in device pixels.
type FaceFunc func(style Style, size float64) font.Face

// GoFace returns a Go font face, falling back to basicfont when the font
// cannot be parsed or sized.
func GoFace(style Style, size float64) font.Face {
	fontsOnce.Do(parseFonts)
	if style < 0 || int(style) >= len(fonts) || fonts[style] == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(fonts[style], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		conic.Logger().Warn("plot: new face", "style", style, "size", size, "err", err)
		return basicfont.Face7x13
	}
	return face
}

// BasicFace ignores style and size and always returns basicfont.Face7x13.
func BasicFace(Style, float64) font.Face {
	return basicfont.Face7x13
}

// Alignment of a label relative to its anchor point.
type (
	hAlign int
	vAlign int
)

const (
	alignLeft hAlign = iota
	alignCenter
	alignRight
)

const (
	alignBaseline vAlign = iota
	alignTop
	alignMiddle
	alignBottom
)

// label draws s anchored at (x, y) with canvas-style alignment.
func label(dst *image.RGBA, face font.Face, s string, x, y float64, h hAlign, v vAlign, col conic.RGBA) {
	width := font.MeasureString(face, s)
	m := face.Metrics()

	dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	switch h {
	case alignCenter:
		dot.X -= width / 2
	case alignRight:
		dot.X -= width
	}
	switch v {
	case alignTop:
		dot.Y += m.Ascent
	case alignMiddle:
		dot.Y += (m.Ascent - m.Descent) / 2
	case alignBottom:
		dot.Y -= m.Descent
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col.NRGBA()),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)
}
