package frac

import (
	"bytes"
	"image/png"
	"testing"
)

func TestGrayImageSharesBuffer(t *testing.T) {
	bounds := Dimensions{Width: 3, Height: 2}
	pixels := []byte{0, 1, 2, 3, 4, 5}
	img := GrayImage(pixels, bounds)

	if img.Stride != 3 || img.Rect.Dx() != 3 || img.Rect.Dy() != 2 {
		t.Fatalf("unexpected geometry: stride %d rect %v", img.Stride, img.Rect)
	}
	pixels[4] = 99
	if img.GrayAt(1, 1).Y != 99 {
		t.Errorf("GrayImage copied the buffer instead of wrapping it")
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	bounds := Dimensions{Width: 4, Height: 4}
	pixels := make([]byte, bounds.TotalPixels())
	for i := range pixels {
		pixels[i] = byte(i * 16)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, GrayImage(pixels, bounds)); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 4 {
		t.Errorf("decoded bounds = %v", decoded.Bounds())
	}
}

func TestDownscale(t *testing.T) {
	src := Dimensions{Width: 8, Height: 8}
	target := Dimensions{Width: 4, Height: 4}

	img := Downscale(GrayImage(make([]byte, src.TotalPixels()), src), target)
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("downscaled bounds = %v, want 4x4", img.Bounds())
	}
}
