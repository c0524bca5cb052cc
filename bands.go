package frac

// Band is a horizontal, row-contiguous slice of the output image assigned to
// one worker. Bands produced by SplitBands never overlap and together cover
// every row exactly once, so each worker owns its rows' bytes outright and
// no synchronization is needed on the pixel buffer.
type Band struct {
	Y0   int // first absolute row of the band
	Rows int // number of rows
}

// SplitBands partitions height rows into bands of the given size. The final
// band absorbs any remainder, so the union of all bands is exactly
// [0, height). rows <= 0 is treated as 1 (one row per band, maximal
// parallelism).
func SplitBands(height, rows int) []Band {
	if rows <= 0 {
		rows = 1
	}
	bands := make([]Band, 0, (height+rows-1)/rows)
	for y := 0; y < height; y += rows {
		n := rows
		if y+n > height {
			n = height - y
		}
		bands = append(bands, Band{Y0: y, Rows: n})
	}
	return bands
}

// BandRowsFor returns the per-band row count for splitting height rows
// evenly across workers, with the final band absorbing the remainder.
func BandRowsFor(height, workers int) int {
	if workers <= 0 {
		workers = 1
	}
	rows := height / workers
	if rows < 1 {
		rows = 1
	}
	return rows
}
