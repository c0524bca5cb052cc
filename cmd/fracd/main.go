// fracd is the coordinator for distributed fractal rendering.
//
// It owns the pixel buffer of one render job, splits the image into
// horizontal bands, and hands bands over websocket to any number of
// connected fracworker processes. When every band has been returned the
// assembled image is written as a PNG and the process exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	frac "github.com/forksofpower/frac"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		listen    = flag.String("listen", ":8080", "address to serve the worker websocket on")
		zoom      = flag.Float64("zoom", 0, "side length of the square region of the complex plane")
		center    = flag.String("center", "", "center of the region as \"re,im\"")
		landmark  = flag.String("landmark", "", "named view instead of -zoom/-center")
		dims      = flag.String("dimensions", "1920x1080", "output image size as \"WxH\"")
		limit     = flag.Int("limit", 1000, "iteration limit per pixel")
		algorithm = flag.String("algorithm", "escape_time", "escape_time or burning_ship")
		invert    = flag.Bool("invert", false, "invert the greyscale ramp")
		bandRows  = flag.Int("band", 32, "rows per band assignment")
		output    = flag.String("output", "mandelbrot.png", "output PNG filename")
	)
	flag.Parse()

	job := frac.JobSpec{
		Algorithm: *algorithm,
		Limit:     *limit,
		Invert:    *invert,
		CenterX:   0,
		CenterY:   0,
		Zoom:      *zoom,
	}

	switch {
	case *landmark != "":
		lm, ok := frac.Landmarks[*landmark]
		if !ok {
			return fmt.Errorf("unknown landmark %q", *landmark)
		}
		job.CenterX, job.CenterY, job.Zoom = lm.CenterX, lm.CenterY, lm.Zoom
	case *zoom > 0 && *center != "":
		c, err := frac.ParseComplex(*center)
		if err != nil {
			return fmt.Errorf("-center: %w", err)
		}
		job.CenterX, job.CenterY = real(c), imag(c)
	default:
		return fmt.Errorf("either -landmark or both -zoom and -center are required")
	}

	bounds, err := frac.ParseDimensions(*dims)
	if err != nil {
		return fmt.Errorf("-dimensions: %w", err)
	}
	job.Width, job.Height = bounds.Width, bounds.Height

	if *limit <= 0 {
		return fmt.Errorf("-limit must be positive, got %d", *limit)
	}

	sched := newBandScheduler(job, *bandRows)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", workerHandler(sched))

	srv := &http.Server{
		Addr:              *listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("httpServer: %v", err)
		}
	}()

	log.Printf("waiting for workers on ws://localhost%s/ws", *listen)
	pixels := sched.wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create %q: %w", *output, err)
	}
	defer f.Close()

	if err := frac.WritePNG(f, frac.GrayImage(pixels, bounds)); err != nil {
		return fmt.Errorf("write %q: %w", *output, err)
	}
	log.Printf("fully rendered image saved to %q", *output)
	return nil
}
