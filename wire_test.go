package frac

import "testing"

func TestJobSpecHelpers(t *testing.T) {
	job := JobSpec{
		Width:   1920,
		Height:  1080,
		Limit:   1000,
		CenterX: -0.5,
		CenterY: 0,
		Zoom:    3,
	}

	if job.Bounds() != (Dimensions{Width: 1920, Height: 1080}) {
		t.Errorf("Bounds = %v", job.Bounds())
	}
	want := RegionAround(3, -0.5, 0)
	if job.Region() != want {
		t.Errorf("Region = %+v, want %+v", job.Region(), want)
	}
}

func TestBandAssignmentBand(t *testing.T) {
	a := BandAssignment{Y0: 32, Rows: 16}
	if a.Band() != (Band{Y0: 32, Rows: 16}) {
		t.Errorf("Band = %+v", a.Band())
	}
}
