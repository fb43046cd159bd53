// Package watermark places a mark image onto a base image: it resolves the
// mark's size (fixed dimensions, aspect-preserving fit, or a scale factor)
// and position (corner, centered, random, or relative coordinates), applies
// an opacity reduction, and composites the mark (optionally tiled across
// the whole canvas) using the mark's own alpha channel as the blend mask.
//
// Position and scale specifications arrive from request parameters as short
// string encodings ("tl", "c", "r", "10%x20", "f", "0.5"). ParsePosition and
// ParseScale turn those into typed values exactly once, at request
// construction time; malformed strings fail with ErrInvalidParameter.
//
// Random placement draws from an injected *rand.Rand so callers control
// determinism. A mark source file can be shared read-only across concurrent
// pipeline runs via SourceCache.
package watermark
