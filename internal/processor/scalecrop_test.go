package processor

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// createSolidImage creates an in-memory NRGBA test image filled with one color
func createSolidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.NRGBA
			if x < width/2 && y < height/2 {
				c = color.NRGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.NRGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.NRGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.NRGBA{255, 255, 255, 255} // White bottom-right
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func dims(img image.Image) (int, int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestScaleAndCrop_ContainFit(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		size         TargetSize
		wantW, wantH int
	}{
		{"landscape into square", 200, 100, TargetSize{100, 100}, 100, 50},
		{"portrait into square", 100, 200, TargetSize{100, 100}, 50, 100},
		{"exact fit", 100, 50, TargetSize{100, 50}, 100, 50},
		{"width only", 200, 50, TargetSize{100, 0}, 100, 25},
		{"height only", 200, 50, TargetSize{0, 25}, 100, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createSolidImage(tt.srcW, tt.srcH, color.NRGBA{9, 9, 9, 255})

			out, err := ScaleAndCrop(img, tt.size, CropMode{}, false)
			if err != nil {
				t.Fatalf("ScaleAndCrop failed: %v", err)
			}

			w, h := dims(out)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestScaleAndCrop_Identity(t *testing.T) {
	img := createSolidImage(100, 80, color.NRGBA{1, 2, 3, 255})

	out, err := ScaleAndCrop(img, TargetSize{100, 80}, CropMode{}, false)
	if err != nil {
		t.Fatalf("ScaleAndCrop failed: %v", err)
	}

	w, h := dims(out)
	if w != 100 || h != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", w, h)
	}
	if out != image.Image(img) {
		t.Error("identity scale should not resize")
	}
}

func TestScaleAndCrop_Upscale(t *testing.T) {
	img := createSolidImage(50, 25, color.NRGBA{9, 9, 9, 255})

	out, err := ScaleAndCrop(img, TargetSize{100, 0}, CropMode{}, true)
	if err != nil {
		t.Fatalf("ScaleAndCrop failed: %v", err)
	}
	if w, h := dims(out); w != 100 || h != 50 {
		t.Errorf("upscaled dimensions: got %dx%d, want 100x50", w, h)
	}

	out, err = ScaleAndCrop(img, TargetSize{100, 0}, CropMode{}, false)
	if err != nil {
		t.Fatalf("ScaleAndCrop failed: %v", err)
	}
	if w, h := dims(out); w != 50 || h != 25 {
		t.Errorf("without upscale: got %dx%d, want 50x25", w, h)
	}
}

func TestScaleAndCrop_InvalidTarget(t *testing.T) {
	img := createSolidImage(10, 10, color.NRGBA{9, 9, 9, 255})

	_, err := ScaleAndCrop(img, TargetSize{}, CropMode{}, false)
	if !errors.Is(err, ErrInvalidTargetSize) {
		t.Errorf("got err %v, want ErrInvalidTargetSize", err)
	}
}

func TestScaleAndCrop_CenteredCrop(t *testing.T) {
	// Cover fit leaves a 100px horizontal overflow to remove symmetrically.
	img := createPatternImage(200, 100)

	out, err := ScaleAndCrop(img, TargetSize{100, 100}, CropMode{Kind: CropCentered}, false)
	if err != nil {
		t.Fatalf("ScaleAndCrop failed: %v", err)
	}

	if w, h := dims(out); w != 100 || h != 100 {
		t.Fatalf("dimensions: got %dx%d, want 100x100", w, h)
	}
	// The centered window spans the middle of the pattern: red/green in the
	// top half, blue/white in the bottom.
	nrgba := out.(*image.NRGBA)
	if c := nrgba.NRGBAAt(10, 10); c.R != 255 || c.G != 0 {
		t.Errorf("top-left quadrant: got %v, want red", c)
	}
	if c := nrgba.NRGBAAt(90, 10); c.G != 255 || c.R != 0 {
		t.Errorf("top-right quadrant: got %v, want green", c)
	}
}

func TestScaleAndCrop_CenteredCrop_OddOverflow(t *testing.T) {
	img := createSolidImage(201, 100, color.NRGBA{9, 9, 9, 255})

	out, err := ScaleAndCrop(img, TargetSize{100, 100}, CropMode{Kind: CropCentered}, false)
	if err != nil {
		t.Fatalf("ScaleAndCrop failed: %v", err)
	}
	if w, h := dims(out); w != 100 || h != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", w, h)
	}
}

func TestScaleAndCrop_EdgeCrop(t *testing.T) {
	tests := []struct {
		name string
		spec string
		// quadrant color expected at the output's center
		wantR, wantG, wantB uint8
	}{
		{"near edges keep left", "0,0", 255, 0, 0},   // left half, top: red
		{"far edges keep right", "-0,-0", 0, 255, 0}, // right half, top: green
		{"oversized offset clamps", "-150,0", 255, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createPatternImage(200, 100)
			mode, err := ParseCropMode(tt.spec)
			if err != nil {
				t.Fatalf("ParseCropMode(%q) failed: %v", tt.spec, err)
			}

			out, err := ScaleAndCrop(img, TargetSize{100, 100}, mode, false)
			if err != nil {
				t.Fatalf("ScaleAndCrop failed: %v", err)
			}

			if w, h := dims(out); w != 100 || h != 100 {
				t.Fatalf("dimensions: got %dx%d, want 100x100", w, h)
			}
			c := out.(*image.NRGBA).NRGBAAt(25, 25)
			if c.R != tt.wantR || c.G != tt.wantG || c.B != tt.wantB {
				t.Errorf("sample color: got (%d,%d,%d), want (%d,%d,%d)",
					c.R, c.G, c.B, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestScaleAndCrop_EdgeCrop_PartialAxis(t *testing.T) {
	// ",0" keeps the x axis centered and anchors y to the top edge.
	img := createPatternImage(100, 200)
	mode, err := ParseCropMode(",0")
	if err != nil {
		t.Fatalf("ParseCropMode failed: %v", err)
	}

	out, err := ScaleAndCrop(img, TargetSize{100, 100}, mode, false)
	if err != nil {
		t.Fatalf("ScaleAndCrop failed: %v", err)
	}

	if w, h := dims(out); w != 100 || h != 100 {
		t.Fatalf("dimensions: got %dx%d, want 100x100", w, h)
	}
	// Top edge of the source pattern: red then green.
	c := out.(*image.NRGBA).NRGBAAt(25, 10)
	if c.R != 255 || c.G != 0 {
		t.Errorf("sample color: got %v, want red", c)
	}
}

func TestScaleAndCrop_ScaleOnly(t *testing.T) {
	img := createSolidImage(400, 200, color.NRGBA{9, 9, 9, 255})

	out, err := ScaleAndCrop(img, TargetSize{100, 100}, CropMode{Kind: CropScaleOnly}, false)
	if err != nil {
		t.Fatalf("ScaleAndCrop failed: %v", err)
	}

	// Cover-fit scale (0.5) applies, but the overflow stays visible.
	if w, h := dims(out); w != 200 || h != 100 {
		t.Errorf("dimensions: got %dx%d, want 200x100", w, h)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    TargetSize
		wantErr bool
	}{
		{"100x50", TargetSize{100, 50}, false},
		{"100x0", TargetSize{100, 0}, false},
		{"0x50", TargetSize{0, 50}, false},
		{"100", TargetSize{}, true},
		{"-1x50", TargetSize{}, true},
		{"axb", TargetSize{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTargetSize) {
					t.Errorf("got err %v, want ErrInvalidTargetSize", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
