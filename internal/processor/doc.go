// Package processor implements the thumbnail transformation pipeline: an
// ordered chain of processors that each receive the image produced by the
// previous one plus the original request options and return a possibly-new
// image.
//
// The pipeline's center of gravity is ScaleAndCrop, which resolves a scale
// factor (cover-fit when cropping, contain-fit otherwise), resizes, and then
// applies one of five crop modes: none, centered, edge-offset, entropy-guided
// smart crop, or scale-only. The remaining processors (colorspace
// normalization, whitespace autocrop, the detail/sharpen filters, and the
// best-effort watermark step) are thin passes over the raster backend.
//
// # Options
//
// Request parameters arrive as an Options value. Legacy string encodings
// (crop descriptors like "smart", "scale" or "-10,-0"; watermark position
// and scale strings) are parsed into typed values once, at request
// construction time, by ParseCropMode and the watermark package's parsers.
// Parse failures are explicit errors; nothing falls back silently.
//
// # Ownership
//
// Processors never mutate their input image. Each returns a new owned value
// or, when no work was needed, the input handle unchanged; callers must not
// assume either and should simply use the returned image.
package processor
