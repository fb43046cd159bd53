package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// ScaleAlpha returns a copy of the image with every alpha value multiplied
// by the given factor. A factor of 0.5 halves the opacity of each pixel;
// 1.0 is a plain copy. The factor is clamped to [0, 1].
func ScaleAlpha(img image.Image, factor float64) *image.NRGBA {
	if factor < 0 {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = uint8(float64(dst.Pix[i])*factor + 0.5)
	}
	return dst
}
