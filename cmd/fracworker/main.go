// fracworker is a rendering worker for the distributed mode.
//
// It dials a fracd coordinator, receives the job parameters once, then
// loops: receive a band assignment, render it with the local band renderer,
// and send the bytes back. The worker exits when the coordinator reports
// the job complete.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	frac "github.com/forksofpower/frac"
)

const wsReadLimit = 1 << 24

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		server  = flag.String("server", "ws://localhost:8080/ws", "coordinator websocket URL")
		workers = flag.Int("workers", 0, "local render workers, 0 = GOMAXPROCS")
	)
	flag.Parse()

	ctx := context.Background()

	log.Printf("connecting to %s", *server)
	c, _, err := websocket.Dial(ctx, *server, nil)
	if err != nil {
		return fmt.Errorf("dial %q: %w", *server, err)
	}
	defer c.CloseNow()
	c.SetReadLimit(wsReadLimit)

	var job frac.JobSpec
	if err := wsjson.Read(ctx, c, &job); err != nil {
		return fmt.Errorf("read job spec: %w", err)
	}

	alg, known := frac.AlgorithmByName(job.Algorithm)
	if !known {
		log.Printf("unknown algorithm %q, defaulting to %q", job.Algorithm, alg.Name())
	}
	renderer := frac.Renderer{
		Algorithm: alg,
		Limit:     job.Limit,
		Invert:    job.Invert,
		Workers:   *workers,
	}
	bounds, region := job.Bounds(), job.Region()
	log.Printf("job: %s, %s, limit %d", bounds, alg.Name(), job.Limit)

	for {
		var assignment frac.BandAssignment
		if err := wsjson.Read(ctx, c, &assignment); err != nil {
			return fmt.Errorf("read assignment: %w", err)
		}
		if assignment.Done {
			log.Printf("job complete")
			c.Close(websocket.StatusNormalClosure, "")
			return nil
		}

		band := assignment.Band()
		log.Printf("rendering band rows [%d,%d)", band.Y0, band.Y0+band.Rows)
		pixels, err := renderer.RenderBand(ctx, bounds, region, band)
		if err != nil {
			return fmt.Errorf("render band at row %d: %w", band.Y0, err)
		}

		res := frac.BandResult{Y0: band.Y0, Rows: band.Rows, Pixels: pixels}
		if err := wsjson.Write(ctx, c, res); err != nil {
			return fmt.Errorf("send result: %w", err)
		}
	}
}
