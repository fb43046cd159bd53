package processor

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/thumbnail-engine/internal/watermark"
)

// ErrInvalidTargetSize is returned when both target axes are zero (the scale
// factor would be undefined) or a dimension is malformed.
var ErrInvalidTargetSize = errors.New("invalid target size")

// TargetSize is the requested thumbnail size. A zero component means the
// axis is unconstrained and is derived from the other axis, preserving the
// source aspect ratio. Both components zero is invalid.
type TargetSize struct {
	Width  int
	Height int
}

// ParseSize parses a "WIDTHxHEIGHT" string, e.g. "100x50" or "100x0".
func ParseSize(s string) (TargetSize, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return TargetSize{}, fmt.Errorf("%w: %q is not WIDTHxHEIGHT", ErrInvalidTargetSize, s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width < 0 {
		return TargetSize{}, fmt.Errorf("%w: width %q", ErrInvalidTargetSize, w)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height < 0 {
		return TargetSize{}, fmt.Errorf("%w: height %q", ErrInvalidTargetSize, h)
	}
	return TargetSize{Width: width, Height: height}, nil
}

// Options carries the request parameters shared by every processor in a
// chain. The zero value asks for no transformation at all.
type Options struct {
	// Size is the target thumbnail size for ScaleAndCrop.
	Size TargetSize

	// Crop selects the crop mode. See ParseCropMode.
	Crop CropMode

	// Upscale permits enlarging the source beyond its natural size.
	Upscale bool

	// Grayscale converts the image to grayscale, keeping any alpha channel.
	Grayscale bool

	// ReplaceAlpha, when non-nil, flattens transparency onto a solid
	// background of this color. Ignored for opaque images.
	ReplaceAlpha color.Color

	// Autocrop trims uniform white borders before scaling.
	Autocrop bool

	// Detail and Sharpen apply the corresponding convolution filters,
	// in that order, after scaling.
	Detail  bool
	Sharpen bool

	// Watermark, when non-nil, requests best-effort watermarking as the
	// final step.
	Watermark *watermark.Options
}

// ParseColor parses a CSS-style hex color ("#fff" or "#ffffff") for the
// ReplaceAlpha option. The empty string yields nil (keep transparency).
func ParseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("parse replace-alpha color: %w", err)
	}
	return c, nil
}
