package processor

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ScaleAndCrop resizes an image toward a target size and applies the
// requested crop mode.
//
// The scale factor is cover-fit (max of the per-axis ratios) when cropping
// is requested or an axis is unconstrained, and contain-fit (min of the
// ratios) otherwise. An unconstrained axis is derived from the other axis
// once the scale is known. The image is resized only when it would shrink,
// or when it would grow and upscaling is permitted; the scaled dimensions
// are rounded to the nearest integer so floating-point boundaries cannot
// lose a pixel to truncation.
//
// After resizing, the overflow on each axis (resized size minus target) is
// removed according to the crop mode: split evenly for a centered crop,
// anchored by percentage offsets for an edge crop, or trimmed from the
// least-informative side for a smart crop. CropScaleOnly skips the crop and
// returns the resized image with its overflow intact.
//
// A target with both axes zero fails with ErrInvalidTargetSize.
func ScaleAndCrop(img image.Image, size TargetSize, mode CropMode, upscale bool) (image.Image, error) {
	if size.Width == 0 && size.Height == 0 {
		return nil, fmt.Errorf("%w: both target axes are zero", ErrInvalidTargetSize)
	}

	bounds := img.Bounds()
	sourceX := float64(bounds.Dx())
	sourceY := float64(bounds.Dy())
	targetX := float64(size.Width)
	targetY := float64(size.Height)

	cropping := mode.Kind != CropNone

	var scale float64
	if cropping || targetX == 0 || targetY == 0 {
		scale = math.Max(targetX/sourceX, targetY/sourceY)
	} else {
		scale = math.Min(targetX/sourceX, targetY/sourceY)
	}

	// Derive an unconstrained axis now that the scale is known.
	if targetX == 0 {
		targetX = sourceX * scale
	} else if targetY == 0 {
		targetY = sourceY * scale
	}

	if scale < 1.0 || (scale > 1.0 && upscale) {
		img = imaging.Resize(img,
			int(math.Round(sourceX*scale)),
			int(math.Round(sourceY*scale)),
			imaging.Lanczos)
	}

	if !cropping || mode.Kind == CropScaleOnly {
		return img, nil
	}

	resized := img.Bounds()
	width, height := resized.Dx(), resized.Dy()
	diffX := int(float64(width) - math.Min(float64(width), targetX))
	diffY := int(float64(height) - math.Min(float64(height), targetY))
	if diffX == 0 && diffY == 0 {
		return img, nil
	}

	var box image.Rectangle
	switch mode.Kind {
	case CropSmart:
		box = smartCrop(img, diffX, diffY)
	case CropEdge:
		box = edgeBox(mode, width, height, int(targetX), int(targetY), diffX, diffY)
	default:
		box = centeredBox(width, height, int(targetX), int(targetY), diffX, diffY)
	}
	return imaging.Crop(img, box), nil
}

// centeredBox removes half of each axis overflow from each side. Integer
// floor division puts the extra pixel of an odd overflow on the far side.
func centeredBox(width, height, targetX, targetY, diffX, diffY int) image.Rectangle {
	halfX := diffX / 2
	halfY := diffY / 2
	return image.Rect(
		halfX,
		halfY,
		minInt(width, targetX+halfX),
		minInt(height, targetY+halfY),
	)
}

// edgeBox shifts the centered box toward a chosen edge of each axis by an
// offset expressed as a percentage of the target size, clamped to the
// overflow. An unset axis keeps the centered placement.
func edgeBox(mode CropMode, width, height, targetX, targetY, diffX, diffY int) image.Rectangle {
	box := centeredBox(width, height, targetX, targetY, diffX, diffY)
	if mode.X.Set {
		offset := minInt(targetX*mode.X.Percent/100, diffX)
		if mode.X.FromFar {
			box.Min.X = diffX - offset
			box.Max.X = width - offset
		} else {
			box.Min.X = offset
			box.Max.X = width - (diffX - offset)
		}
	}
	if mode.Y.Set {
		offset := minInt(targetY*mode.Y.Percent/100, diffY)
		if mode.Y.FromFar {
			box.Min.Y = diffY - offset
			box.Max.Y = height - offset
		} else {
			box.Min.Y = offset
			box.Max.Y = height - (diffY - offset)
		}
	}
	return box
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
