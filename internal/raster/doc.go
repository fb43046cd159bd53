// Package raster provides the low-level pixel operations that the thumbnail
// processors are built on: color-mode introspection and conversion, intensity
// histograms and Shannon entropy, alpha-channel manipulation, and content
// bounding-box detection.
//
// All functions accept standard Go image.Image values and never mutate their
// input; results are newly allocated images (or cheap aliases when no work is
// required). The coordinate system is the usual one: (0,0) at the top-left,
// X increasing rightward, Y increasing downward.
//
// # Color Modes
//
// Go's image package has no single notion of a "color mode" the way raster
// editors do, so this package models the four modes the pipeline cares about
// explicitly (see Mode): opaque grayscale, grayscale with alpha, opaque RGB,
// and RGBA. ModeOf classifies an image and Convert produces a new image in
// the requested mode, failing with ErrUnsupportedMode when the conversion
// would silently discard transparency.
package raster
