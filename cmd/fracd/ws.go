package main

import (
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	frac "github.com/forksofpower/frac"
)

// Band results are JSON with base64 pixel payloads; wide images need more
// than the websocket default read limit.
const wsReadLimit = 1 << 24

// workerHandler upgrades an incoming connection and drives one worker
// session: send the job spec once, then loop handing out bands and copying
// results back into the scheduler until no bands remain.
func workerHandler(s *bandScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()
		c.SetReadLimit(wsReadLimit)

		ctx := r.Context()
		log.Printf("worker connected: %s", r.RemoteAddr)
		s.incActiveWorkers()
		defer s.decActiveWorkers()

		if err := wsjson.Write(ctx, c, s.job); err != nil {
			log.Printf("send job to %s: %v", r.RemoteAddr, err)
			return
		}

		for {
			band, found := s.popBand()
			if !found {
				_ = wsjson.Write(ctx, c, frac.BandAssignment{Done: true})
				c.Close(websocket.StatusNormalClosure, "job complete")
				return
			}

			if err := wsjson.Write(ctx, c, frac.BandAssignment{Y0: band.Y0, Rows: band.Rows}); err != nil {
				log.Printf("assign band to %s: %v", r.RemoteAddr, err)
				return
			}

			var res frac.BandResult
			if err := wsjson.Read(ctx, c, &res); err != nil {
				log.Printf("read result from %s: %v", r.RemoteAddr, err)
				return
			}
			if err := s.bandFinished(res); err != nil {
				log.Printf("bad result from %s: %v", r.RemoteAddr, err)
				return
			}
		}
	}
}
