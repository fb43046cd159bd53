package processor

import (
	"image"
	"image/color"

	"github.com/ironsheep/thumbnail-engine/internal/raster"
)

// Colorspace normalizes an image's color mode. It runs unconditionally,
// before any scaling, so palette reduction never interacts with resampling
// artifacts.
//
// With grayscale set, the image is converted to grayscale, keeping an alpha
// channel if one carries transparency. Otherwise: grayscale and opaque
// truecolor images pass through unchanged; transparent images are promoted
// to RGBA, or, when replaceAlpha is non-nil, flattened onto a solid
// background of that color and returned opaque; anything else is normalized
// to opaque truecolor.
func Colorspace(img image.Image, grayscale bool, replaceAlpha color.Color) (image.Image, error) {
	transparent := raster.IsTransparent(img)

	if grayscale {
		if raster.ModeOf(img) == raster.ModeGray {
			return img, nil
		}
		if transparent {
			return raster.Convert(img, raster.ModeGrayAlpha)
		}
		return raster.Convert(img, raster.ModeGray)
	}

	if raster.ModeOf(img) == raster.ModeGray {
		return img, nil
	}

	if transparent {
		if replaceAlpha == nil {
			return raster.Convert(img, raster.ModeRGBA)
		}
		return raster.Flatten(img, replaceAlpha), nil
	}

	// Opaque NRGBA is already in canonical form.
	if _, ok := img.(*image.NRGBA); ok {
		return img, nil
	}
	return raster.Convert(img, raster.ModeRGB)
}
