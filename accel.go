package frac

import (
	"errors"
	"image"
	"image/color"
	"math"
	"sync"
)

// ErrFallbackToCPU indicates an accelerator cannot handle the requested
// render. The caller falls back to the built-in CPU counts renderer.
var ErrFallbackToCPU = errors.New("frac: falling back to CPU rendering")

// Accelerator is an alternate renderer that produces per-pixel iteration
// counts instead of mapped greyscale bytes. Implementations must use the
// Classic recurrence with the escape test fixed at the canonical radius
// (|z|² > 4) and report pixels that never escape with a count greater than
// the limit, so output is interchangeable with the built-in CPU fallback.
//
// Implementations are supplied by backend packages (typically GPU bindings)
// and registered via RegisterAccelerator.
type Accelerator interface {
	// Name identifies the backend (e.g. "opencl", "cpu").
	Name() string

	// Counts renders the region into a row-major buffer of
	// bounds.TotalPixels() iteration counts.
	Counts(bounds Dimensions, region Region, limit int) ([]uint32, error)
}

var (
	accelMu sync.RWMutex
	accel   Accelerator
)

// RegisterAccelerator installs an alternate counts renderer. Only one
// accelerator is active at a time; later registrations replace earlier
// ones. Passing nil removes the current accelerator.
func RegisterAccelerator(a Accelerator) {
	accelMu.Lock()
	accel = a
	accelMu.Unlock()
}

// Counts renders per-pixel iteration counts, preferring the registered
// accelerator and falling back to the CPU implementation when none is
// registered or the accelerator declines with ErrFallbackToCPU. Any other
// accelerator error is returned as-is.
func Counts(bounds Dimensions, region Region, limit int) ([]uint32, error) {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()

	if a != nil {
		counts, err := a.Counts(bounds, region, limit)
		if err == nil {
			return counts, nil
		}
		if !errors.Is(err, ErrFallbackToCPU) {
			return nil, err
		}
	}
	return CPUAccelerator{}.Counts(bounds, region, limit)
}

// CPUAccelerator implements the Accelerator contract on the CPU. It exists
// so the counts pipeline is exercisable end to end without GPU bindings and
// serves as the reference for what a backend must produce.
type CPUAccelerator struct{}

var _ Accelerator = CPUAccelerator{}

func (CPUAccelerator) Name() string { return "cpu" }

func (CPUAccelerator) Counts(bounds Dimensions, region Region, limit int) ([]uint32, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	counts := make([]uint32, bounds.TotalPixels())
	for y := 0; y < bounds.Height; y++ {
		for x := 0; x < bounds.Width; x++ {
			point := PixelToPoint(bounds, Pixel{X: x, Y: y}, region)
			counts[y*bounds.Width+x] = countAt(point, limit)
		}
	}
	return counts, nil
}

// countAt iterates the Classic recurrence at the canonical escape radius.
// Pixels that stay bounded report limit+1, the "did not escape" sentinel.
func countAt(c complex128, limit int) uint32 {
	var z complex128
	for i := 0; i < limit; i++ {
		if normSqr(z) > 4 {
			return uint32(i)
		}
		z = z*z + c
	}
	return uint32(limit) + 1
}

// CountsToRGB converts an iteration-count buffer into an RGB image.
// Counts beyond the limit (inside the set) map to pure white. When the
// limit is exactly 255 the count is used directly as the grey level;
// otherwise counts rescale to [0, 255] with rounding. All three channels
// carry the same value.
func CountsToRGB(counts []uint32, bounds Dimensions, limit int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bounds.Width, bounds.Height))
	for i, n := range counts {
		x := i % bounds.Width
		y := i / bounds.Width
		img.SetRGBA(x, y, countColor(n, uint32(limit)))
	}
	return img
}

func countColor(n, limit uint32) color.RGBA {
	if n > limit {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	var v uint8
	if limit == 255 {
		v = uint8(n)
	} else {
		v = uint8(math.Round(float64(n) / float64(limit) * 255))
	}
	return color.RGBA{R: v, G: v, B: v, A: 255}
}
