// Package frac renders escape-time fractal images of the Mandelbrot family.
//
// The core pipeline maps pixel coordinates onto a rectangular region of the
// complex plane, iterates a per-pixel recurrence to an escape iteration
// count, and converts that count into a greyscale or color pixel value.
// Rendering is parallelized over independent horizontal bands of the image.
package frac

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a render is attempted with a zero or
// negative width or height. The geometry mapper divides by the bounds, so
// invalid dimensions must be rejected before any pixel work starts.
var ErrInvalidDimensions = errors.New("frac: width and height must be positive")

// Dimensions is an image size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// TotalPixels returns Width * Height.
func (d Dimensions) TotalPixels() int {
	return d.Width * d.Height
}

// Validate returns ErrInvalidDimensions unless both sides are positive.
func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, d.Width, d.Height)
	}
	return nil
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Pixel is an (x, y) pixel coordinate, x growing rightward and y downward
// from the top-left corner of the image.
type Pixel struct {
	X int
	Y int
}
