package frac

import "testing"

func TestParsePair(t *testing.T) {
	tests := []struct {
		s      string
		sep    byte
		a, b   float64
		wantOK bool
	}{
		{"", ',', 0, 0, false},
		{"10,", ',', 0, 0, false},
		{",5", ',', 0, 0, false},
		{"10,5", ',', 10, 5, true},
		{"10,20xy", ',', 0, 0, false},
		{"0.5x", 'x', 0, 0, false},
		{"0.5x1.5", 'x', 0.5, 1.5, true},
		{"-2.5,0.75", ',', -2.5, 0.75, true},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			a, b, err := ParsePair(tt.s, tt.sep)
			if tt.wantOK != (err == nil) {
				t.Fatalf("ParsePair(%q, %q) err = %v, wantOK %v", tt.s, tt.sep, err, tt.wantOK)
			}
			if err == nil && (a != tt.a || b != tt.b) {
				t.Errorf("ParsePair(%q, %q) = (%v, %v), want (%v, %v)", tt.s, tt.sep, a, b, tt.a, tt.b)
			}
		})
	}
}

func TestParseComplex(t *testing.T) {
	c, err := ParseComplex("1.25,-0.0625")
	if err != nil {
		t.Fatalf("ParseComplex: %v", err)
	}
	if c != complex(1.25, -0.0625) {
		t.Errorf("ParseComplex = %v, want 1.25-0.0625i", c)
	}

	if _, err := ParseComplex(",-0.0625"); err == nil {
		t.Errorf("ParseComplex(\",-0.0625\") succeeded, want error")
	}
}

func TestParseDimensions(t *testing.T) {
	d, err := ParseDimensions("1920x1080")
	if err != nil {
		t.Fatalf("ParseDimensions: %v", err)
	}
	if d != (Dimensions{Width: 1920, Height: 1080}) {
		t.Errorf("ParseDimensions = %v", d)
	}

	for _, s := range []string{"", "1920", "x1080", "1920x", "0x100", "100x-1", "1.5x2"} {
		if _, err := ParseDimensions(s); err == nil {
			t.Errorf("ParseDimensions(%q) succeeded, want error", s)
		}
	}
}
