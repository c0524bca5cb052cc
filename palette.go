package frac

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is a gradient table of color keypoints positioned on [0, 1].
// Lookups blend between neighbouring keypoints in HCL space, which keeps
// perceived lightness smooth across the gradient.
type Palette []struct {
	Col colorful.Color
	Pos float64
}

// At returns the interpolated color for t in [0, 1]. Values past the last
// keypoint clamp to it.
func (p Palette) At(t float64) color.RGBA {
	for i := 0; i < len(p)-1; i++ {
		c1, c2 := p[i], p[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			f := (t - c1.Pos) / (c2.Pos - c1.Pos)
			r, g, b := c1.Col.BlendHcl(c2.Col, f).Clamped().RGB255()
			return color.RGBA{R: r, G: g, B: b, A: 255}
		}
	}
	r, g, b := p[len(p)-1].Col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette: " + err.Error())
	}
	return c
}

// Spectral is the default palette, a perceptually even ramp from deep red
// through yellow to violet.
var Spectral = Palette{
	{mustHex("#9e0142"), 0.0},
	{mustHex("#d53e4f"), 0.1},
	{mustHex("#f46d43"), 0.2},
	{mustHex("#fdae61"), 0.3},
	{mustHex("#fee090"), 0.4},
	{mustHex("#ffffbf"), 0.5},
	{mustHex("#e6f598"), 0.6},
	{mustHex("#abdda4"), 0.7},
	{mustHex("#66c2a5"), 0.8},
	{mustHex("#3288bd"), 0.9},
	{mustHex("#5e4fa2"), 1.0},
}

// Colorize maps a rendered greyscale buffer through the palette. Intensity
// 0 (pixels that never escaped) stays black; everything else indexes the
// gradient by its normalized intensity.
func Colorize(pixels []byte, bounds Dimensions, p Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bounds.Width, bounds.Height))
	black := color.RGBA{A: 255}
	for i, v := range pixels {
		x := i % bounds.Width
		y := i / bounds.Width
		if v == 0 {
			img.SetRGBA(x, y, black)
			continue
		}
		img.SetRGBA(x, y, p.At(float64(v)/255))
	}
	return img
}
