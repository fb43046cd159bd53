package raster

import (
	"image"
	"image/color"
)

// Binarize thresholds an image into a two-level grayscale image: pixels with
// luminance at or above the threshold become white (255), the rest black (0).
func Binarize(img image.Image, threshold uint8) *image.Gray {
	gray := ToGray(img)
	for i, v := range gray.Pix {
		if v >= threshold {
			gray.Pix[i] = 255
		} else {
			gray.Pix[i] = 0
		}
	}
	return gray
}

// ContentBounds computes the bounding box of all pixels that differ from a
// pure-white reference canvas, i.e. the smallest rectangle containing any
// non-white content. The second return value is false when the image is
// uniformly white and no such box exists.
func ContentBounds(img image.Image) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if c.Y == 255 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
