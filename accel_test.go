package frac

import (
	"errors"
	"image/color"
	"slices"
	"testing"
)

func TestCPUAcceleratorCounts(t *testing.T) {
	bounds := Dimensions{Width: 40, Height: 40}
	region := RegionAround(4, 0, 0)
	limit := 50

	counts, err := CPUAccelerator{}.Counts(bounds, region, limit)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if len(counts) != bounds.TotalPixels() {
		t.Fatalf("got %d counts, want %d", len(counts), bounds.TotalPixels())
	}

	// The view straddles the set, so there must be both bounded pixels
	// (sentinel limit+1) and escaped ones (count <= limit).
	sentinel := uint32(limit) + 1
	if !slices.Contains(counts, sentinel) {
		t.Errorf("no pixel carries the did-not-escape sentinel %d", sentinel)
	}
	escaped := false
	for _, n := range counts {
		if n > sentinel {
			t.Fatalf("count %d beyond sentinel %d", n, sentinel)
		}
		if n <= uint32(limit) {
			escaped = true
		}
	}
	if !escaped {
		t.Errorf("no pixel escaped")
	}

	// The center pixel maps near the origin, which never escapes.
	center := counts[(bounds.Height/2)*bounds.Width+bounds.Width/2]
	if center != sentinel {
		t.Errorf("center count = %d, want sentinel %d", center, sentinel)
	}
}

func TestCPUAcceleratorInvalidDimensions(t *testing.T) {
	_, err := CPUAccelerator{}.Counts(Dimensions{}, RegionAround(4, 0, 0), 10)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
}

type stubAccelerator struct {
	counts []uint32
	err    error
}

func (stubAccelerator) Name() string { return "stub" }

func (s stubAccelerator) Counts(Dimensions, Region, int) ([]uint32, error) {
	return s.counts, s.err
}

func TestCountsPrefersRegisteredAccelerator(t *testing.T) {
	defer RegisterAccelerator(nil)

	want := []uint32{1, 2, 3, 4}
	RegisterAccelerator(stubAccelerator{counts: want})

	got, err := Counts(Dimensions{Width: 2, Height: 2}, RegionAround(4, 0, 0), 10)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("Counts = %v, want %v", got, want)
	}
}

func TestCountsFallsBackToCPU(t *testing.T) {
	defer RegisterAccelerator(nil)

	bounds := Dimensions{Width: 8, Height: 8}
	region := RegionAround(4, 0, 0)

	reference, err := CPUAccelerator{}.Counts(bounds, region, 20)
	if err != nil {
		t.Fatalf("cpu counts: %v", err)
	}

	RegisterAccelerator(stubAccelerator{err: ErrFallbackToCPU})
	got, err := Counts(bounds, region, 20)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if !slices.Equal(got, reference) {
		t.Errorf("fallback counts differ from CPU accelerator output")
	}
}

func TestCountsPropagatesAcceleratorError(t *testing.T) {
	defer RegisterAccelerator(nil)

	boom := errors.New("device lost")
	RegisterAccelerator(stubAccelerator{err: boom})

	if _, err := Counts(Dimensions{Width: 2, Height: 2}, RegionAround(4, 0, 0), 10); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestCountColor(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	tests := []struct {
		name     string
		n, limit uint32
		want     color.RGBA
	}{
		{"beyond limit is white", 256, 255, white},
		{"sentinel at arbitrary limit", 1001, 1000, white},
		{"limit 255 maps directly", 100, 255, color.RGBA{R: 100, G: 100, B: 100, A: 255}},
		{"arbitrary limit rescales with rounding", 500, 1000, color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{"zero count", 0, 1000, color.RGBA{A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countColor(tt.n, tt.limit); got != tt.want {
				t.Errorf("countColor(%d, %d) = %v, want %v", tt.n, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCountsToRGB(t *testing.T) {
	bounds := Dimensions{Width: 2, Height: 2}
	img := CountsToRGB([]uint32{0, 5, 10, 11}, bounds, 10)

	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if c := img.RGBAAt(1, 1); c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("sentinel pixel = %v, want white", c)
	}
	if c := img.RGBAAt(0, 0); c != (color.RGBA{A: 255}) {
		t.Errorf("count-0 pixel = %v, want black", c)
	}
}
