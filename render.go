package frac

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Renderer renders a region of the complex plane into a greyscale pixel
// buffer, one byte per pixel in row-major order.
//
// The image is partitioned into horizontal bands which a fixed pool of
// workers claims off a shared cursor. Bands own disjoint row ranges of the
// buffer, so workers write without locks. Every row maps its sub-region
// through the geometry mapper with the same arithmetic regardless of how
// rows are grouped into bands, so output is byte-identical for any worker
// count or band size.
type Renderer struct {
	Algorithm Algorithm
	Limit     int  // iteration limit, must be positive
	Invert    bool // invert the greyscale ramp for escaped pixels
	Workers   int  // worker goroutines; <= 0 means GOMAXPROCS
	BandRows  int  // rows per band; <= 0 means one row per band
}

func (r Renderer) validate(bounds Dimensions) error {
	if err := bounds.Validate(); err != nil {
		return err
	}
	if r.Limit <= 0 {
		return fmt.Errorf("frac: iteration limit must be positive, got %d", r.Limit)
	}
	return nil
}

// Render computes the full image for the given bounds and region. The
// returned buffer has length bounds.TotalPixels(), every byte written
// exactly once. Rendering runs to completion; ctx bounds the worker group
// but the per-band work itself is never interrupted.
func (r Renderer) Render(ctx context.Context, bounds Dimensions, region Region) ([]byte, error) {
	if err := r.validate(bounds); err != nil {
		return nil, err
	}

	pixels := make([]byte, bounds.TotalPixels())
	bands := SplitBands(bounds.Height, r.BandRows)

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(bands) {
		workers = len(bands)
	}

	// Dynamic pull: each worker claims the next unclaimed band until the
	// list is drained. The cursor is the only shared mutable state.
	var cursor atomic.Int64
	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(cursor.Add(1)) - 1
				if i >= len(bands) {
					return nil
				}
				band := bands[i]
				r.renderBand(pixels[band.Y0*bounds.Width:], bounds, region, band)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pixels, nil
}

// RenderBand renders one band of a larger image and returns just that
// band's bytes (band.Rows * bounds.Width of them). Stitching RenderBand
// results at their absolute rows reproduces Render's output byte for byte.
// This is the unit of work handed to remote workers in distributed mode.
func (r Renderer) RenderBand(ctx context.Context, bounds Dimensions, region Region, band Band) ([]byte, error) {
	if err := r.validate(bounds); err != nil {
		return nil, err
	}
	if band.Y0 < 0 || band.Rows <= 0 || band.Y0+band.Rows > bounds.Height {
		return nil, fmt.Errorf("frac: band rows [%d,%d) outside image height %d", band.Y0, band.Y0+band.Rows, bounds.Height)
	}
	pixels := make([]byte, band.Rows*bounds.Width)
	r.renderBand(pixels, bounds, region, band)
	return pixels, nil
}

// renderBand fills dst with the band's rows, dst[0] holding the band's
// first pixel. Each row computes its own one-row sub-region through
// PixelToPoint (using the row and its exclusive lower edge as pixel
// coordinates) and maps its columns against that sub-region. A row's
// arithmetic therefore depends only on the full bounds and region, never on
// which band it landed in.
func (r Renderer) renderBand(dst []byte, bounds Dimensions, region Region, band Band) {
	rowBounds := Dimensions{Width: bounds.Width, Height: 1}
	for row := 0; row < band.Rows; row++ {
		y := band.Y0 + row
		rowRegion := Region{
			UpperLeft:  PixelToPoint(bounds, Pixel{X: 0, Y: y}, region),
			LowerRight: PixelToPoint(bounds, Pixel{X: bounds.Width, Y: y + 1}, region),
		}
		off := row * bounds.Width
		for col := 0; col < bounds.Width; col++ {
			point := PixelToPoint(rowBounds, Pixel{X: col, Y: 0}, rowRegion)
			n, escaped := r.Algorithm.Compute(point, r.Limit)
			dst[off+col] = Intensity(n, escaped, r.Limit, r.Invert)
		}
	}
}
