package processor

import (
	"fmt"
	"image"
	"log"
	"math/rand"

	"github.com/ironsheep/thumbnail-engine/internal/watermark"
)

// Processor is one step in a thumbnail pipeline. Process receives the image
// produced by the previous step plus the original request options and
// returns a possibly-new image. Implementations must not mutate the input.
type Processor interface {
	Name() string
	Process(img image.Image, opts *Options) (image.Image, error)
}

// Chain runs processors in order, threading the image through each one.
type Chain []Processor

// Run executes the chain. The first failing processor aborts the run; its
// error is wrapped with the processor name.
func (c Chain) Run(img image.Image, opts *Options) (image.Image, error) {
	for _, p := range c {
		out, err := p.Process(img, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name(), err)
		}
		img = out
	}
	return img, nil
}

// Default builds the standard thumbnail chain: colorspace normalization,
// autocrop, scale-and-crop, post filters, watermark. The watermark step
// shares the given source cache and random source; both may be nil when no
// request carries watermark options.
func Default(sources *watermark.SourceCache, rng *rand.Rand) Chain {
	return Chain{
		ColorspaceStep(),
		AutocropStep(),
		ScaleCropStep(),
		FilterStep(),
		WatermarkStep(sources, rng),
	}
}

// step adapts a function to the Processor interface.
type step struct {
	name string
	fn   func(image.Image, *Options) (image.Image, error)
}

func (s step) Name() string { return s.name }

func (s step) Process(img image.Image, opts *Options) (image.Image, error) {
	return s.fn(img, opts)
}

// ColorspaceStep normalizes the color mode (see Colorspace).
func ColorspaceStep() Processor {
	return step{"colorspace", func(img image.Image, opts *Options) (image.Image, error) {
		return Colorspace(img, opts.Grayscale, opts.ReplaceAlpha)
	}}
}

// AutocropStep trims white borders (see Autocrop).
func AutocropStep() Processor {
	return step{"autocrop", func(img image.Image, opts *Options) (image.Image, error) {
		return Autocrop(img, opts.Autocrop), nil
	}}
}

// ScaleCropStep resizes and crops to the target size (see ScaleAndCrop).
// A request with no target size skips the step, so a chain can serve
// filter-only or watermark-only requests.
func ScaleCropStep() Processor {
	return step{"scale-and-crop", func(img image.Image, opts *Options) (image.Image, error) {
		if opts.Size == (TargetSize{}) {
			return img, nil
		}
		return ScaleAndCrop(img, opts.Size, opts.Crop, opts.Upscale)
	}}
}

// FilterStep applies the detail and sharpen filters (see Filters).
func FilterStep() Processor {
	return step{"filters", func(img image.Image, opts *Options) (image.Image, error) {
		return Filters(img, opts.Detail, opts.Sharpen), nil
	}}
}

// WatermarkStep composites a watermark as the final step. Watermarking is
// cosmetic: a missing or unreadable mark file, or any failure during
// compositing, is logged and the image passes through unchanged rather than
// failing the whole pipeline.
func WatermarkStep(sources *watermark.SourceCache, rng *rand.Rand) Processor {
	return step{"watermark", func(img image.Image, opts *Options) (image.Image, error) {
		if opts.Watermark == nil || opts.Watermark.Path == "" {
			return img, nil
		}
		mark, err := sources.Load(opts.Watermark.Path)
		if err != nil {
			log.Printf("watermark skipped: %v", err)
			return img, nil
		}
		out, err := watermark.Apply(img, mark, *opts.Watermark, rng)
		if err != nil {
			log.Printf("watermark skipped: %v", err)
			return img, nil
		}
		return out, nil
	}}
}
