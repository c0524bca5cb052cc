package frac

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// GrayImage wraps a rendered greyscale buffer as an image.Gray without
// copying. The buffer must have length bounds.TotalPixels().
func GrayImage(pixels []byte, bounds Dimensions) *image.Gray {
	return &image.Gray{
		Pix:    pixels,
		Stride: bounds.Width,
		Rect:   image.Rect(0, 0, bounds.Width, bounds.Height),
	}
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// Downscale resizes img to the target dimensions with Lanczos resampling.
// Used by the supersampling path: render at an integer multiple of the
// requested size, then downscale for cheap antialiasing.
func Downscale(img image.Image, target Dimensions) image.Image {
	return resize.Resize(uint(target.Width), uint(target.Height), img, resize.Lanczos3)
}
