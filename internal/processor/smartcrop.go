package processor

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/thumbnail-engine/internal/raster"
)

// smartCrop computes a crop box that removes diffX columns and diffY rows
// from the image by iteratively trimming whichever edge of each axis carries
// the least information.
//
// Each iteration takes a bounded step: a fifth of the remaining overflow,
// at least 10 pixels, never more than the overflow itself. The proportional
// step converges quickly on large overflows, the 10px floor bounds the
// iteration count on small ones. The step is removed from the lower-entropy
// edge, or split across both edges when they are equally informative.
func smartCrop(img image.Image, diffX, diffY int) image.Rectangle {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	left, top := 0, 0
	right, bottom := width, height

	for diffX > 0 {
		step := minInt(diffX, maxInt(diffX/5, 10))
		start := imaging.Crop(img, image.Rect(left, 0, left+step, height))
		end := imaging.Crop(img, image.Rect(right-step, 0, right, height))
		trimStart, trimEnd := compareEntropy(start, end, step, diffX)
		left += trimStart
		right -= trimEnd
		diffX -= trimStart + trimEnd
	}
	for diffY > 0 {
		step := minInt(diffY, maxInt(diffY/5, 10))
		start := imaging.Crop(img, image.Rect(0, top, width, top+step))
		end := imaging.Crop(img, image.Rect(0, bottom-step, width, bottom))
		trimStart, trimEnd := compareEntropy(start, end, step, diffY)
		top += trimStart
		bottom -= trimEnd
		diffY -= trimStart + trimEnd
	}

	return image.Rect(left, top, right, bottom)
}

// compareEntropy decides how much of a step to trim from the start and end
// edges of an axis, given the entropy of the two candidate slices.
//
// Edges whose entropies are within 1% of each other count as equally
// informative; the step is then removed from both sides, a full step each
// when the remaining overflow allows it, otherwise the step split in half
// (floor to the start, remainder to the end). Otherwise the whole step
// comes off the lower-entropy edge.
func compareEntropy(start, end image.Image, step, diff int) (int, int) {
	startEntropy := raster.Entropy(start)
	endEntropy := raster.Entropy(end)
	if endEntropy != 0 && math.Abs(startEntropy/endEntropy-1) < 0.01 {
		if diff >= step*2 {
			return step, step
		}
		half := step / 2
		return half, step - half
	}
	if startEntropy > endEntropy {
		return 0, step
	}
	return step, 0
}
