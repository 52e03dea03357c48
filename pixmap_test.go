package conic

import (
	"bytes"
	"image/png"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want [4]uint8
	}{
		{"#0f172a", [4]uint8{15, 23, 42, 255}},
		{"22d3ee", [4]uint8{34, 211, 238, 255}},
		{"#fff", [4]uint8{255, 255, 255, 255}},
		{"#00000080", [4]uint8{0, 0, 0, 128}},
		{"bogus", [4]uint8{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		c := Hex(tt.in).NRGBA()
		got := [4]uint8{c.R, c.G, c.B, c.A}
		if got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBlendPixel(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(RGB(0, 0, 0))

	pm.BlendPixel(1, 1, RGB(1, 1, 1), 0.5)
	got := pm.GetPixel(1, 1).NRGBA()
	if got.R != 128 || got.A != 255 {
		t.Errorf("half coverage white over black = %+v, want R=128 A=255", got)
	}

	pm.BlendPixel(2, 2, RGB(1, 0, 0), 0)
	if got := pm.GetPixel(2, 2); got != RGB(0, 0, 0) {
		t.Errorf("zero coverage changed pixel to %+v", got)
	}

	// Out of bounds is ignored.
	pm.BlendPixel(-1, 9, RGB(1, 1, 1), 1)
}

func TestPixmapViewSharesBuffer(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.View().Pix[4*4+0] = 200 // pixel (1, 1)
	if got := pm.GetPixel(1, 1).NRGBA().R; got != 200 {
		t.Errorf("write through View not visible: R=%d", got)
	}
}

func TestPixmapEncodePNG(t *testing.T) {
	pm := NewPixmap(8, 6)
	pm.Clear(Background)

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if img.Bounds() != pm.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", img.Bounds(), pm.Bounds())
	}
}
