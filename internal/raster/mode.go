package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedMode is returned when an image cannot be represented in the
// requested color mode, for example flattening a transparent image to an
// opaque mode without a replacement background color.
var ErrUnsupportedMode = errors.New("unsupported color mode")

// Mode identifies the color mode of a raster.
type Mode int

const (
	// ModeGray is opaque 8-bit grayscale.
	ModeGray Mode = iota
	// ModeGrayAlpha is grayscale with an alpha channel. Represented as an
	// NRGBA image whose color channels carry equal luminance values.
	ModeGrayAlpha
	// ModeRGB is opaque truecolor.
	ModeRGB
	// ModeRGBA is truecolor with an alpha channel.
	ModeRGBA
)

func (m Mode) String() string {
	switch m {
	case ModeGray:
		return "gray"
	case ModeGrayAlpha:
		return "gray+alpha"
	case ModeRGB:
		return "rgb"
	case ModeRGBA:
		return "rgba"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// IsTransparent reports whether the image carries any non-opaque pixel.
// Images without an alpha channel (grayscale, YCbCr) are never transparent.
func IsTransparent(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return false
}

// ModeOf classifies an image into one of the pipeline's color modes.
// Grayscale detection is by concrete type; an NRGBA image that happens to
// hold only gray values is still classified as RGB(A).
func ModeOf(img image.Image) Mode {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return ModeGray
	}
	if IsTransparent(img) {
		return ModeRGBA
	}
	return ModeRGB
}

// Convert returns a new image in the requested mode.
//
// Conversions to the opaque modes (ModeGray, ModeRGB) fail with
// ErrUnsupportedMode when the source has transparency, because dropping the
// alpha channel without a replacement background would alter the visible
// result. Use Flatten to composite over a background first.
func Convert(img image.Image, m Mode) (image.Image, error) {
	switch m {
	case ModeGray:
		if IsTransparent(img) {
			return nil, fmt.Errorf("%w: transparent image to opaque grayscale", ErrUnsupportedMode)
		}
		return ToGray(img), nil
	case ModeGrayAlpha:
		return imaging.Grayscale(img), nil
	case ModeRGB:
		if IsTransparent(img) {
			return nil, fmt.Errorf("%w: transparent image to opaque rgb", ErrUnsupportedMode)
		}
		return imaging.Clone(img), nil
	case ModeRGBA:
		return imaging.Clone(img), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, m)
}

// ToGray flattens an image to opaque 8-bit grayscale.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Flatten composites an image over a solid background of the given color,
// producing an opaque result.
func Flatten(img image.Image, background color.Color) *image.NRGBA {
	b := img.Bounds()
	base := imaging.New(b.Dx(), b.Dy(), background)
	return imaging.Overlay(base, img, image.Point{}, 1.0)
}
