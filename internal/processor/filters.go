package processor

import (
	"image"

	"github.com/anthonynsimon/bild/convolution"
)

// Classic 3x3 post-processing kernels. Coefficients match the widely used
// "detail" (mild local contrast boost) and "sharpen" filter tables,
// pre-divided by their signed sums (6 and 16) so each matrix sums to 1 and
// a flat region maps to itself.
var (
	detailKernel = &convolution.Kernel{
		Matrix: []float64{
			0, -1.0 / 6, 0,
			-1.0 / 6, 10.0 / 6, -1.0 / 6,
			0, -1.0 / 6, 0,
		},
		Width:  3,
		Height: 3,
	}
	sharpenKernel = &convolution.Kernel{
		Matrix: []float64{
			-2.0 / 16, -2.0 / 16, -2.0 / 16,
			-2.0 / 16, 32.0 / 16, -2.0 / 16,
			-2.0 / 16, -2.0 / 16, -2.0 / 16,
		},
		Width:  3,
		Height: 3,
	}
)

// Filters applies the requested post-processing convolution filters:
// detail first, then sharpen. The two are independent and composable;
// with neither flag set the image passes through unchanged.
func Filters(img image.Image, detail, sharpen bool) image.Image {
	opts := &convolution.Options{Bias: 0, Wrap: false, KeepAlpha: true}
	if detail {
		img = convolution.Convolve(img, detailKernel, opts)
	}
	if sharpen {
		img = convolution.Convolve(img, sharpenKernel, opts)
	}
	return img
}
