package watermark

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidParameter is returned for malformed position strings,
// non-numeric or non-positive scale factors, and out-of-range opacities.
var ErrInvalidParameter = errors.New("invalid watermark parameter")

// PositionKind selects how the mark's placement is computed.
type PositionKind int

const (
	// PositionRandom places the mark uniformly at random within the area
	// that keeps it fully on the canvas. This is the default.
	PositionRandom PositionKind = iota
	// PositionCorner anchors the mark to one of the four corners.
	PositionCorner
	// PositionCentered centers the mark on the canvas.
	PositionCentered
	// PositionRelative places the mark at explicit per-axis offsets, each
	// either a percentage of the available space or absolute pixels.
	PositionRelative
)

// Corner identifies a canvas corner for PositionCorner placement.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Offset is a single-axis placement offset: either a percentage of the
// available space on that axis or an absolute pixel count.
type Offset struct {
	Percent bool
	Value   int
}

// Position is a fully parsed placement specification.
type Position struct {
	Kind   PositionKind
	Corner Corner
	X, Y   Offset // used by PositionRelative
}

// ScaleKind selects how the mark's output size is computed.
type ScaleKind int

const (
	// ScaleFactor multiplies both mark dimensions by Factor.
	ScaleFactor ScaleKind = iota
	// ScaleFixed uses explicit output dimensions.
	ScaleFixed
	// ScaleFit scales the mark as large as possible while keeping its
	// aspect ratio and staying within the canvas.
	ScaleFit
)

// Scale is a fully parsed size specification.
type Scale struct {
	Kind          ScaleKind
	Width, Height int     // used by ScaleFixed
	Factor        float64 // used by ScaleFactor
}

// Options describes a complete watermark request: where the mark comes from
// and how it should be scaled, placed, and blended.
type Options struct {
	Path     string // mark source file, loaded via SourceCache
	Position Position
	Opacity  float64 // 0 transparent .. 1 opaque
	Scale    Scale
	Tile     bool
}

// ParsePosition parses a position string into a Position.
//
// Accepted encodings (case-insensitive):
//
//	tl, tr, bl, br   corner placement
//	c                centered
//	r                random (also the default for an empty string)
//	XxY              per-axis offsets, each either "N" (pixels) or "N%"
//	                 (percent of available space), e.g. "10%x20", "30x40%"
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(s) {
	case "", "r":
		return Position{Kind: PositionRandom}, nil
	case "c":
		return Position{Kind: PositionCentered}, nil
	case "tl":
		return Position{Kind: PositionCorner, Corner: TopLeft}, nil
	case "tr":
		return Position{Kind: PositionCorner, Corner: TopRight}, nil
	case "bl":
		return Position{Kind: PositionCorner, Corner: BottomLeft}, nil
	case "br":
		return Position{Kind: PositionCorner, Corner: BottomRight}, nil
	}

	left, top, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return Position{}, fmt.Errorf("%w: position %q", ErrInvalidParameter, s)
	}
	x, err := parseOffset(left)
	if err != nil {
		return Position{}, fmt.Errorf("%w: position %q", ErrInvalidParameter, s)
	}
	y, err := parseOffset(top)
	if err != nil {
		return Position{}, fmt.Errorf("%w: position %q", ErrInvalidParameter, s)
	}
	return Position{Kind: PositionRelative, X: x, Y: y}, nil
}

func parseOffset(s string) (Offset, error) {
	percent := strings.HasSuffix(s, "%")
	v, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
	if err != nil {
		return Offset{}, err
	}
	return Offset{Percent: percent, Value: v}, nil
}

// ParseScale parses a scale string into a Scale.
//
// "f" (or "F") requests aspect-preserving fit scaling; a positive number is
// a scale factor; the empty string keeps the mark at its natural size.
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(s) {
	case "":
		return Scale{Kind: ScaleFactor, Factor: 1}, nil
	case "f":
		return Scale{Kind: ScaleFit}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Scale{}, fmt.Errorf("%w: scale %q is not \"f\" or a number", ErrInvalidParameter, s)
	}
	if f <= 0 {
		return Scale{}, fmt.Errorf("%w: scale factor %v must be positive", ErrInvalidParameter, f)
	}
	return Scale{Kind: ScaleFactor, Factor: f}, nil
}

// FixedScale builds a Scale with explicit output dimensions.
func FixedScale(width, height int) Scale {
	return Scale{Kind: ScaleFixed, Width: width, Height: height}
}
