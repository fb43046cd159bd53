package watermark

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"time"
)

// ResolveScale computes the mark's output dimensions for a given canvas and
// natural mark size.
func ResolveScale(s Scale, canvas, mark image.Point) (image.Point, error) {
	switch s.Kind {
	case ScaleFixed:
		return image.Pt(s.Width, s.Height), nil
	case ScaleFit:
		factor := math.Min(
			float64(canvas.X)/float64(mark.X),
			float64(canvas.Y)/float64(mark.Y),
		)
		return image.Pt(int(float64(mark.X)*factor), int(float64(mark.Y)*factor)), nil
	case ScaleFactor:
		if s.Factor <= 0 {
			return image.Point{}, fmt.Errorf("%w: scale factor %v must be positive", ErrInvalidParameter, s.Factor)
		}
		return image.Pt(int(float64(mark.X)*s.Factor), int(float64(mark.Y)*s.Factor)), nil
	}
	return image.Point{}, fmt.Errorf("%w: unknown scale kind %d", ErrInvalidParameter, s.Kind)
}

// ResolvePosition computes the mark's top-left placement on the canvas.
//
// The available space on each axis is max(canvas-mark, 0). Percentage
// offsets resolve against that space; pixel offsets are taken literally and
// deliberately not clamped, so callers can push a mark partially or fully
// off-canvas. Random placement draws uniform integers from rng; a nil rng
// falls back to a time-seeded source.
func ResolvePosition(p Position, canvas, mark image.Point, rng *rand.Rand) image.Point {
	maxLeft := canvas.X - mark.X
	if maxLeft < 0 {
		maxLeft = 0
	}
	maxTop := canvas.Y - mark.Y
	if maxTop < 0 {
		maxTop = 0
	}

	switch p.Kind {
	case PositionCorner:
		left, top := 0, 0
		if p.Corner == TopRight || p.Corner == BottomRight {
			left = maxLeft
		}
		if p.Corner == BottomLeft || p.Corner == BottomRight {
			top = maxTop
		}
		return image.Pt(left, top)
	case PositionCentered:
		return image.Pt(maxLeft/2, maxTop/2)
	case PositionRelative:
		return image.Pt(resolveOffset(p.X, maxLeft), resolveOffset(p.Y, maxTop))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return image.Pt(rng.Intn(maxLeft+1), rng.Intn(maxTop+1))
}

func resolveOffset(o Offset, available int) int {
	if o.Percent {
		return available * o.Value / 100
	}
	return o.Value
}
