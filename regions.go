package frac

import "sort"

// Landmark is a named view of the Mandelbrot set: a center point and a zoom
// magnitude (the side of the square region around the center).
type Landmark struct {
	CenterX, CenterY float64
	Zoom             float64
}

// Region returns the square render region for the landmark.
func (l Landmark) Region() Region {
	return RegionAround(l.Zoom, l.CenterX, l.CenterY)
}

// Classic landmarks in the Mandelbrot set, selectable by name on the CLI as
// an alternative to an explicit center and zoom.
var Landmarks = map[string]Landmark{
	// The whole set.
	"home": {CenterX: -0.5, CenterY: 0, Zoom: 3},

	// Seahorse Valley – dense filaments and repeating "seahorse" curls
	"seahorse_valley": {CenterX: -0.75, CenterY: 0.1, Zoom: 0.1},

	// Elephant Valley – large bulb with trunk-like tendrils
	"elephant_valley": {CenterX: -1.8, CenterY: -0.06, Zoom: 0.1},

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	"spiral_minibrot": {CenterX: -0.74275, CenterY: 0.13175, Zoom: 0.0015},

	// Triple Spiral – threefold symmetric spiral structure
	"triple_spiral": {CenterX: -0.7465, CenterY: 0.0965, Zoom: 0.003},

	// Valley of the Dragon – deep, highly detailed spiral filaments
	"valley_of_the_dragon": {CenterX: -0.7375, CenterY: 0.1825, Zoom: 0.005},

	// Minibrot in a Mini-Spiral – self-similar copy inside a spiral arm
	"minibrot_in_mini_spiral": {CenterX: -1.73825, CenterY: -0.02275, Zoom: 0.0015},
}

// LandmarkNames returns the known landmark names, sorted.
func LandmarkNames() []string {
	names := make([]string, 0, len(Landmarks))
	for name := range Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
