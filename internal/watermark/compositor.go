package watermark

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/thumbnail-engine/internal/raster"
)

// Apply composites a mark onto an image according to the given options and
// returns the composited result as a new RGBA image. The input image and
// mark are never modified.
//
// The mark's opacity is reduced first (when Opacity < 1), then the mark is
// resized per the scale spec and placed per the position spec. Tiled marks
// repeat across the whole canvas at the mark's stride; the starting tile is
// wrapped back past the top-left edge so partial tiles cover the borders.
func Apply(img, mark image.Image, o Options, rng *rand.Rand) (image.Image, error) {
	if o.Opacity < 0 || o.Opacity > 1 {
		return nil, fmt.Errorf("%w: opacity %v outside [0, 1]", ErrInvalidParameter, o.Opacity)
	}
	if o.Opacity < 1 {
		mark = raster.ScaleAlpha(mark, o.Opacity)
	}

	canvas := img.Bounds().Size()
	dims, err := ResolveScale(o.Scale, canvas, mark.Bounds().Size())
	if err != nil {
		return nil, err
	}
	if dims.X <= 0 || dims.Y <= 0 {
		return nil, fmt.Errorf("%w: mark scaled to %dx%d", ErrInvalidParameter, dims.X, dims.Y)
	}
	if dims != mark.Bounds().Size() {
		mark = imaging.Resize(mark, dims.X, dims.Y, imaging.Lanczos)
	}

	pos := ResolvePosition(o.Position, canvas, dims, rng)

	// Draw the mark into a transparent layer and composite that layer over
	// the base using the layer's own alpha as the blend mask.
	layer := imaging.New(canvas.X, canvas.Y, color.NRGBA{})
	if o.Tile {
		firstX := wrapOrigin(pos.X, dims.X)
		firstY := wrapOrigin(pos.Y, dims.Y)
		for y := firstY; y < canvas.Y; y += dims.Y {
			for x := firstX; x < canvas.X; x += dims.X {
				layer = imaging.Paste(layer, mark, image.Pt(x, y))
			}
		}
	} else {
		layer = imaging.Paste(layer, mark, pos)
	}

	return imaging.Overlay(imaging.Clone(img), layer, image.Point{}, 1.0), nil
}

// wrapOrigin maps a placement coordinate to the first tile origin at or
// before the canvas edge, so tiling covers the border with partial tiles.
// The result is always in [-stride, -1].
func wrapOrigin(pos, stride int) int {
	m := pos % stride
	if m < 0 {
		m += stride
	}
	return m - stride
}
