package frac

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePair splits s on the first occurrence of sep and parses both halves
// as floats. Both halves must parse completely; "10," or ",5" or trailing
// garbage is an error.
func ParsePair(s string, sep byte) (float64, float64, error) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return 0, 0, fmt.Errorf("missing separator %q in %q", sep, s)
	}
	a, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing %q: %w", s[:i], err)
	}
	b, err := strconv.ParseFloat(s[i+1:], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing %q: %w", s[i+1:], err)
	}
	return a, b, nil
}

// ParseComplex parses "re,im" into a complex number.
func ParseComplex(s string) (complex128, error) {
	re, im, err := ParsePair(s, ',')
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

// ParseDimensions parses "WxH" into image dimensions and validates them.
func ParseDimensions(s string) (Dimensions, error) {
	i := strings.IndexByte(s, 'x')
	if i < 0 {
		return Dimensions{}, fmt.Errorf("missing separator 'x' in %q", s)
	}
	w, err := strconv.Atoi(s[:i])
	if err != nil {
		return Dimensions{}, fmt.Errorf("parsing width %q: %w", s[:i], err)
	}
	h, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return Dimensions{}, fmt.Errorf("parsing height %q: %w", s[i+1:], err)
	}
	d := Dimensions{Width: w, Height: h}
	if err := d.Validate(); err != nil {
		return Dimensions{}, err
	}
	return d, nil
}
