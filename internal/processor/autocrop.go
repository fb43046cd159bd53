package processor

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/thumbnail-engine/internal/raster"
)

// Autocrop removes uniform white borders from the edges of an image. It
// should run before ScaleAndCrop so the whitespace is gone before the image
// is resized.
//
// The image is binarized, denoised with a small median filter so isolated
// specks don't pin the borders, and cropped to the bounding box of whatever
// differs from an all-white canvas. A uniformly white image (no bounding
// box) and a disabled flag both pass the image through unchanged.
func Autocrop(img image.Image, enabled bool) image.Image {
	if !enabled {
		return img
	}
	binary := raster.Binarize(img, 128)
	denoised := effect.Median(binary, 3)
	box, ok := raster.ContentBounds(denoised)
	if !ok {
		return img
	}
	return imaging.Crop(img, box)
}
