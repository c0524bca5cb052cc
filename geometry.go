package frac

// Region is the rectangle of the complex plane being rendered, given by its
// upper-left and lower-right corners. A valid region has
// real(UpperLeft) <= real(LowerRight) and imag(UpperLeft) >= imag(LowerRight).
type Region struct {
	UpperLeft  complex128
	LowerRight complex128
}

// PlaneWidth returns the extent of the region along the real axis.
func (r Region) PlaneWidth() float64 {
	return real(r.LowerRight) - real(r.UpperLeft)
}

// PlaneHeight returns the extent of the region along the imaginary axis.
func (r Region) PlaneHeight() float64 {
	return imag(r.UpperLeft) - imag(r.LowerRight)
}

// PixelToPoint converts a pixel coordinate to the corresponding point on the
// complex plane. Row 0 maps to the top of the region (maximum imaginary
// value); increasing y walks downward in image space and therefore downward
// along the imaginary axis.
//
// Coordinates are deliberately not bounds-checked: band sub-region mapping
// calls this with y == bounds.Height (the exclusive lower edge) to obtain a
// band's lower-right corner. The caller must guarantee non-zero bounds.
func PixelToPoint(bounds Dimensions, pixel Pixel, region Region) complex128 {
	return complex(
		real(region.UpperLeft)+float64(pixel.X)*region.PlaneWidth()/float64(bounds.Width),
		imag(region.UpperLeft)-float64(pixel.Y)*region.PlaneHeight()/float64(bounds.Height),
	)
}

// RegionAround returns the square region of side magnitude centered on
// (centerX, centerY).
//
// Magnitude is not validated here: a zero or negative magnitude yields a
// degenerate or inverted region. Whether that is an error is a policy
// decision for the configuration layer.
func RegionAround(magnitude float64, centerX, centerY float64) Region {
	half := magnitude / 2
	return Region{
		UpperLeft:  complex(centerX-half, centerY+half),
		LowerRight: complex(centerX+half, centerY-half),
	}
}
