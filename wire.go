package frac

// Wire messages for the distributed rendering mode. The coordinator
// (cmd/fracd) sends a JobSpec once per connection, then streams
// BandAssignments; workers (cmd/fracworker) answer each assignment with a
// BandResult. Messages travel JSON-encoded over a websocket.

// JobSpec carries everything a worker needs to render bands of the job.
type JobSpec struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Algorithm string  `json:"algorithm"`
	Limit     int     `json:"limit"`
	Invert    bool    `json:"invert"`
	CenterX   float64 `json:"center_x"`
	CenterY   float64 `json:"center_y"`
	Zoom      float64 `json:"zoom"`
}

// Bounds returns the job's image dimensions.
func (j JobSpec) Bounds() Dimensions {
	return Dimensions{Width: j.Width, Height: j.Height}
}

// Region returns the job's render region.
func (j JobSpec) Region() Region {
	return RegionAround(j.Zoom, j.CenterX, j.CenterY)
}

// BandAssignment asks a worker to render one band. Done tells the worker
// the job is complete and it can disconnect.
type BandAssignment struct {
	Y0   int  `json:"y0"`
	Rows int  `json:"rows"`
	Done bool `json:"done,omitempty"`
}

// Band returns the assignment as a Band.
func (a BandAssignment) Band() Band {
	return Band{Y0: a.Y0, Rows: a.Rows}
}

// BandResult returns a rendered band's greyscale bytes, Rows*Width of them
// in row-major order starting at absolute row Y0.
type BandResult struct {
	Y0     int    `json:"y0"`
	Rows   int    `json:"rows"`
	Pixels []byte `json:"pixels"`
}
