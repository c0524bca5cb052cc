package frac

import (
	"image/color"
	"testing"
)

func TestPaletteAtEndpoints(t *testing.T) {
	first := Spectral[0].Col
	r, g, b := first.RGB255()
	if got := Spectral.At(0); got != (color.RGBA{R: r, G: g, B: b, A: 255}) {
		t.Errorf("At(0) = %v, want first keypoint %v", got, first.Hex())
	}

	last := Spectral[len(Spectral)-1].Col
	r, g, b = last.RGB255()
	if got := Spectral.At(1); got != (color.RGBA{R: r, G: g, B: b, A: 255}) {
		t.Errorf("At(1) = %v, want last keypoint %v", got, last.Hex())
	}
}

func TestPaletteAtIsOpaque(t *testing.T) {
	for _, tt := range []float64{0, 0.05, 0.33, 0.5, 0.99, 1, 2} {
		if c := Spectral.At(tt); c.A != 255 {
			t.Errorf("At(%v) alpha = %d, want 255", tt, c.A)
		}
	}
}

func TestColorize(t *testing.T) {
	bounds := Dimensions{Width: 2, Height: 2}
	img := Colorize([]byte{0, 128, 255, 0}, bounds, Spectral)

	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	// Intensity 0 (never escaped) stays black.
	if c := img.RGBAAt(0, 0); c != (color.RGBA{A: 255}) {
		t.Errorf("pixel (0,0) = %v, want black", c)
	}
	// Escaped pixels pick up gradient color.
	if c := img.RGBAAt(1, 0); c == (color.RGBA{A: 255}) {
		t.Errorf("pixel (1,0) stayed black")
	}
}
