package processor

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidCropSpec is returned for crop descriptor strings that are
// neither a known mode name nor a well-formed edge-offset pair.
var ErrInvalidCropSpec = errors.New("invalid crop specification")

// CropKind enumerates the crop modes of ScaleAndCrop.
type CropKind int

const (
	// CropNone disables cropping; the image is contain-fitted instead.
	CropNone CropKind = iota
	// CropCentered removes the overflow symmetrically from both sides of
	// each axis.
	CropCentered
	// CropEdge anchors the crop box by explicit percentage offsets from a
	// chosen edge of each axis.
	CropEdge
	// CropSmart trims the least-informative edges first, guided by the
	// entropy of the removed slices.
	CropSmart
	// CropScaleOnly cover-fits the image to the target but skips the crop,
	// leaving the overflow visible.
	CropScaleOnly
)

// AxisOffset is one axis of an edge-offset crop. When Set is false the axis
// keeps the default centered behavior. FromFar measures the offset from the
// right or bottom edge instead of the left or top. Percent is a percentage
// of the target size on that axis, clamped to the croppable overflow.
type AxisOffset struct {
	Set     bool
	FromFar bool
	Percent int
}

// CropMode is a fully parsed crop request.
type CropMode struct {
	Kind CropKind
	X, Y AxisOffset // used by CropEdge
}

// Legacy edge-offset descriptor: "<x>,<y>" where each group is an optional
// integer percentage with an optional leading "-" anchoring it to the
// far (right/bottom) edge, and either group may be omitted entirely.
var edgeCropRe = regexp.MustCompile(`^(?:(-)?(\d+))?,(?:(-)?(\d+))?$`)

// ParseCropMode parses a crop descriptor string into a CropMode.
//
// Recognized forms:
//
//	""        no cropping
//	"center"  centered crop
//	"smart"   entropy-guided crop
//	"scale"   cover-fit scale without cropping
//	"X,Y"     edge-offset crop; "0,0" crops from the top-left edges,
//	          "-10,-0" crops 10% in from the right and flush to the bottom,
//	          ",0" keeps the x axis centered and crops from the top
//
// A descriptor with both groups omitted (",") degrades to a centered crop,
// matching the historical behavior of an all-empty edge specification.
func ParseCropMode(s string) (CropMode, error) {
	switch s {
	case "":
		return CropMode{Kind: CropNone}, nil
	case "center":
		return CropMode{Kind: CropCentered}, nil
	case "smart":
		return CropMode{Kind: CropSmart}, nil
	case "scale":
		return CropMode{Kind: CropScaleOnly}, nil
	}

	groups := edgeCropRe.FindStringSubmatch(s)
	if groups == nil {
		return CropMode{}, fmt.Errorf("%w: %q", ErrInvalidCropSpec, s)
	}
	x := parseAxisOffset(groups[1], groups[2])
	y := parseAxisOffset(groups[3], groups[4])
	if !x.Set && !y.Set {
		return CropMode{Kind: CropCentered}, nil
	}
	return CropMode{Kind: CropEdge, X: x, Y: y}, nil
}

func parseAxisOffset(sign, digits string) AxisOffset {
	if digits == "" {
		return AxisOffset{}
	}
	// The regexp guarantees digits-only input.
	pct, _ := strconv.Atoi(digits)
	return AxisOffset{Set: true, FromFar: sign == "-", Percent: pct}
}
