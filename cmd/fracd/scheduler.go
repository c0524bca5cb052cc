package main

import (
	"context"
	"fmt"
	"log"
	"sync"

	frac "github.com/forksofpower/frac"
)

// bandScheduler owns the pixel buffer of one render job and hands out bands
// to connected workers. Bands move from unstarted to inProcess when popped;
// once the unstarted set drains, in-process bands are re-issued to idle
// workers so a stalled or disconnected worker cannot wedge the job. The
// first result for a band wins, later duplicates just overwrite the same
// bytes.
type bandScheduler struct {
	job    frac.JobSpec
	pixels []byte

	ctx       context.Context
	ctxCancel context.CancelFunc

	workers      int
	totalRows    int
	finishedRows int

	unstarted map[frac.Band]struct{}
	inProcess map[frac.Band]struct{}
	m         sync.Mutex
}

func newBandScheduler(job frac.JobSpec, bandRows int) *bandScheduler {
	bands := frac.SplitBands(job.Height, bandRows)
	unstarted := make(map[frac.Band]struct{}, len(bands))
	for _, b := range bands {
		unstarted[b] = struct{}{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &bandScheduler{
		job:       job,
		pixels:    make([]byte, job.Bounds().TotalPixels()),
		ctx:       ctx,
		ctxCancel: cancel,
		totalRows: job.Height,
		unstarted: unstarted,
		inProcess: make(map[frac.Band]struct{}, len(bands)),
	}
}

func (s *bandScheduler) popBand() (band frac.Band, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	if len(s.unstarted) > 0 {
		for band = range s.unstarted {
			break
		}
		delete(s.unstarted, band)
		s.inProcess[band] = struct{}{}
		return band, true
	}

	// Nothing unstarted left; re-issue a band that is still in flight.
	if len(s.inProcess) > 0 {
		for band = range s.inProcess {
			break
		}
		return band, true
	}

	return frac.Band{}, false
}

func (s *bandScheduler) bandFinished(res frac.BandResult) error {
	defer log.Printf("finished: %.1f%%", s.progress()*100)

	width := s.job.Width
	if len(res.Pixels) != res.Rows*width {
		return fmt.Errorf("band result at row %d: got %d bytes, want %d", res.Y0, len(res.Pixels), res.Rows*width)
	}
	if res.Y0 < 0 || res.Y0+res.Rows > s.job.Height {
		return fmt.Errorf("band result rows [%d,%d) outside image height %d", res.Y0, res.Y0+res.Rows, s.job.Height)
	}

	s.m.Lock()
	defer s.m.Unlock()

	copy(s.pixels[res.Y0*width:], res.Pixels)

	band := frac.Band{Y0: res.Y0, Rows: res.Rows}
	if _, found := s.inProcess[band]; found {
		s.finishedRows += band.Rows
	}
	delete(s.inProcess, band)

	if len(s.unstarted) == 0 && len(s.inProcess) == 0 {
		s.ctxCancel()
	}
	return nil
}

func (s *bandScheduler) progress() float32 {
	s.m.Lock()
	defer s.m.Unlock()
	return float32(s.finishedRows) / float32(s.totalRows)
}

// wait blocks until every band has been rendered, then returns the
// assembled buffer.
func (s *bandScheduler) wait() []byte {
	<-s.ctx.Done()
	return s.pixels
}

func (s *bandScheduler) incActiveWorkers() {
	s.m.Lock()
	s.workers++
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

func (s *bandScheduler) decActiveWorkers() {
	s.m.Lock()
	s.workers--
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}
