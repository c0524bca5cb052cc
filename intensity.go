package frac

// Intensity converts an escape count into a greyscale byte.
//
// Pixels that never escaped are always 0 (darkest), regardless of invert.
// Escaped pixels rescale their count from [0, limit] to [0, 255] with
// integer truncation; invert counts down from the limit instead, so the
// fringe of the set flips from bright to dark.
func Intensity(n int, escaped bool, limit int, invert bool) uint8 {
	if !escaped {
		return 0
	}
	v := n
	if invert {
		v = limit - n
	}
	return uint8(255 * v / limit)
}
