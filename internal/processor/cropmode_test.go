package processor

import (
	"errors"
	"testing"
)

func TestParseCropMode_Names(t *testing.T) {
	tests := []struct {
		in   string
		want CropKind
	}{
		{"", CropNone},
		{"center", CropCentered},
		{"smart", CropSmart},
		{"scale", CropScaleOnly},
		{",", CropCentered}, // all-empty edge descriptor keeps the default
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			mode, err := ParseCropMode(tt.in)
			if err != nil {
				t.Fatalf("ParseCropMode(%q) failed: %v", tt.in, err)
			}
			if mode.Kind != tt.want {
				t.Errorf("kind: got %d, want %d", mode.Kind, tt.want)
			}
		})
	}
}

func TestParseCropMode_EdgeDescriptors(t *testing.T) {
	tests := []struct {
		in   string
		want CropMode
	}{
		{
			"-10,-0",
			CropMode{Kind: CropEdge,
				X: AxisOffset{Set: true, FromFar: true, Percent: 10},
				Y: AxisOffset{Set: true, FromFar: true, Percent: 0}},
		},
		{
			",0",
			CropMode{Kind: CropEdge,
				Y: AxisOffset{Set: true, FromFar: false, Percent: 0}},
		},
		{
			"10,",
			CropMode{Kind: CropEdge,
				X: AxisOffset{Set: true, FromFar: false, Percent: 10}},
		},
		{
			"0,0",
			CropMode{Kind: CropEdge,
				X: AxisOffset{Set: true},
				Y: AxisOffset{Set: true}},
		},
		{
			"25,-75",
			CropMode{Kind: CropEdge,
				X: AxisOffset{Set: true, Percent: 25},
				Y: AxisOffset{Set: true, FromFar: true, Percent: 75}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			mode, err := ParseCropMode(tt.in)
			if err != nil {
				t.Fatalf("ParseCropMode(%q) failed: %v", tt.in, err)
			}
			if mode != tt.want {
				t.Errorf("got %+v, want %+v", mode, tt.want)
			}
		})
	}
}

func TestParseCropMode_Invalid(t *testing.T) {
	invalid := []string{"10", "abc", "1,2,3", "10%,20", "--5,0", "-,0", "smartt"}

	for _, in := range invalid {
		t.Run(in, func(t *testing.T) {
			_, err := ParseCropMode(in)
			if !errors.Is(err, ErrInvalidCropSpec) {
				t.Errorf("ParseCropMode(%q): got err %v, want ErrInvalidCropSpec", in, err)
			}
		})
	}
}
