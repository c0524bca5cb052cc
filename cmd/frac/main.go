// frac renders escape-time fractal images to PNG files.
//
// A render is described by a zoom magnitude and center point (or a named
// landmark), image dimensions, an iteration limit and an algorithm name.
// Rendering happens locally across parallel band workers; see cmd/fracd and
// cmd/fracworker for the distributed mode.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"
	"strings"

	frac "github.com/forksofpower/frac"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

type config struct {
	bounds    frac.Dimensions
	region    frac.Region
	algorithm frac.Algorithm
	limit     int
	invert    bool
	output    string
	gpu       bool
	workers   int
	bandRows  int
	palette   bool
	super     int
}

func parseFlags() (config, error) {
	var (
		zoom      = flag.Float64("zoom", 0, "side length of the square region of the complex plane")
		center    = flag.String("center", "", "center of the region as \"re,im\"")
		landmark  = flag.String("landmark", "", "named view instead of -zoom/-center: "+strings.Join(frac.LandmarkNames(), ", "))
		dims      = flag.String("dimensions", "1920x1080", "output image size as \"WxH\"")
		limit     = flag.Int("limit", 0, "iteration limit per pixel")
		algorithm = flag.String("algorithm", "escape_time", "escape_time or burning_ship")
		invert    = flag.Bool("invert", false, "invert the greyscale ramp")
		output    = flag.String("output", "mandelbrot.png", "output PNG filename")
		gpu       = flag.Bool("gpu", false, "use the accelerated counts renderer (RGB output)")
		workers   = flag.Int("workers", 0, "render workers, 0 = GOMAXPROCS")
		bandRows  = flag.Int("band", 1, "rows per band, 0 = split evenly across workers")
		palette   = flag.Bool("palette", false, "color output through the spectral palette")
		super     = flag.Int("supersample", 1, "render at N× and downscale")
	)
	flag.Parse()

	var cfg config

	switch {
	case *landmark != "":
		lm, ok := frac.Landmarks[*landmark]
		if !ok {
			return cfg, fmt.Errorf("unknown landmark %q (known: %s)", *landmark, strings.Join(frac.LandmarkNames(), ", "))
		}
		cfg.region = lm.Region()
	case *zoom > 0 && *center != "":
		c, err := frac.ParseComplex(*center)
		if err != nil {
			return cfg, fmt.Errorf("-center: %w", err)
		}
		cfg.region = frac.RegionAround(*zoom, real(c), imag(c))
	case *zoom <= 0 && *center != "":
		return cfg, fmt.Errorf("-zoom must be positive, got %v", *zoom)
	default:
		return cfg, fmt.Errorf("either -landmark or both -zoom and -center are required")
	}

	bounds, err := frac.ParseDimensions(*dims)
	if err != nil {
		return cfg, fmt.Errorf("-dimensions: %w", err)
	}
	cfg.bounds = bounds

	if *limit <= 0 {
		return cfg, fmt.Errorf("-limit must be positive, got %d", *limit)
	}
	cfg.limit = *limit

	alg, known := frac.AlgorithmByName(*algorithm)
	if !known {
		log.Printf("unknown algorithm %q, defaulting to %q", *algorithm, alg.Name())
	}
	cfg.algorithm = alg

	if *super < 1 {
		return cfg, fmt.Errorf("-supersample must be >= 1, got %d", *super)
	}
	cfg.super = *super

	cfg.invert = *invert
	cfg.output = *output
	cfg.gpu = *gpu
	cfg.workers = *workers
	cfg.bandRows = *bandRows
	cfg.palette = *palette
	return cfg, nil
}

func run() error {
	cfg, err := parseFlags()
	if err != nil {
		return err
	}

	if cfg.gpu {
		return renderCounts(cfg)
	}
	return render(cfg)
}

// render runs the band renderer and writes a greyscale (or palette-colored)
// PNG.
func render(cfg config) error {
	renderBounds := frac.Dimensions{
		Width:  cfg.bounds.Width * cfg.super,
		Height: cfg.bounds.Height * cfg.super,
	}

	r := frac.Renderer{
		Algorithm: cfg.algorithm,
		Limit:     cfg.limit,
		Invert:    cfg.invert,
		Workers:   cfg.workers,
		BandRows:  cfg.bandRows,
	}
	if r.BandRows == 0 {
		r.BandRows = frac.BandRowsFor(renderBounds.Height, cfg.workers)
	}

	log.Printf("rendering %s with %s, limit %d", renderBounds, cfg.algorithm.Name(), cfg.limit)
	pixels, err := r.Render(context.Background(), renderBounds, cfg.region)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	gray := frac.GrayImage(pixels, renderBounds)
	if cfg.super > 1 {
		gray = toGray(frac.Downscale(gray, cfg.bounds))
	}

	var img image.Image = gray
	if cfg.palette {
		img = frac.Colorize(gray.Pix, frac.Dimensions{Width: gray.Rect.Dx(), Height: gray.Rect.Dy()}, frac.Spectral)
	}

	return writePNG(cfg.output, img)
}

// renderCounts runs the accelerated counts pipeline and writes an RGB PNG
// with a "gpu_" filename prefix.
func renderCounts(cfg config) error {
	log.Printf("rendering %s via counts renderer, limit %d", cfg.bounds, cfg.limit)
	counts, err := frac.Counts(cfg.bounds, cfg.region, cfg.limit)
	if err != nil {
		return fmt.Errorf("counts render: %w", err)
	}
	img := frac.CountsToRGB(counts, cfg.bounds, cfg.limit)
	return writePNG("gpu_"+cfg.output, img)
}

func writePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %q: %w", filename, err)
	}
	defer f.Close()

	if err := frac.WritePNG(f, img); err != nil {
		return fmt.Errorf("write %q: %w", filename, err)
	}
	log.Printf("rendered image saved to %q", filename)
	return nil
}

// toGray narrows a downscaled image back to image.Gray. The resizer keeps
// greyscale inputs greyscale, so the draw fallback is rarely taken.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
	return g
}
