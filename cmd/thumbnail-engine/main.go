package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/thumbnail-engine/internal/processor"
	"github.com/ironsheep/thumbnail-engine/internal/watermark"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version information")
		size        = flag.String("size", "", "target size as WIDTHxHEIGHT; 0 leaves an axis unconstrained, empty skips resizing")
		crop        = flag.String("crop", "", `crop mode: "center", "smart", "scale", or an edge descriptor like "-10,-0"`)
		upscale     = flag.Bool("upscale", false, "allow enlarging the source image")
		grayscale   = flag.Bool("bw", false, "convert to grayscale")
		replaceA    = flag.String("replace-alpha", "", `flatten transparency onto this hex color, e.g. "#fff"`)
		autocrop    = flag.Bool("autocrop", false, "trim white borders before scaling")
		detail      = flag.Bool("detail", false, "apply the detail filter")
		sharpen     = flag.Bool("sharpen", false, "apply the sharpen filter")
		mark        = flag.String("mark", "", "watermark image file")
		markPos     = flag.String("mark-pos", "", `watermark position: tl/tr/bl/br, "c", "r", or "XxY" offsets`)
		markScale   = flag.String("mark-scale", "", `watermark scale: "f" or a positive factor`)
		markOpacity = flag.Float64("mark-opacity", 1, "watermark opacity in [0,1]")
		markTile    = flag.Bool("mark-tile", false, "tile the watermark across the image")
		out         = flag.String("out", "", "output file (required)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: thumbnail-engine [options] <input-image>\n\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables:\n  THUMBNAIL_ENGINE_LOG_LEVEL=debug    Enable debug logging\n")
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("thumbnail-engine %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if os.Getenv("THUMBNAIL_ENGINE_LOG_LEVEL") == "debug" {
		log.Printf("thumbnail-engine v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if flag.NArg() != 1 || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts, err := buildOptions(*size, *crop, *grayscale, *replaceA, *upscale, *autocrop, *detail, *sharpen,
		*mark, *markPos, *markScale, *markOpacity, *markTile)
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	img, err := imaging.Open(flag.Arg(0), imaging.AutoOrientation(true))
	if err != nil {
		log.Fatalf("Failed to open %s: %v", flag.Arg(0), err)
	}

	chain := processor.Default(watermark.NewSourceCache(), rand.New(rand.NewSource(time.Now().UnixNano())))
	result, err := chain.Run(img, opts)
	if err != nil {
		log.Fatalf("Processing failed: %v", err)
	}

	if err := imaging.Save(result, *out); err != nil {
		log.Fatalf("Failed to save %s: %v", *out, err)
	}
}

// buildOptions parses the raw flag values into a typed request. All string
// encodings are validated here, once, before any pixel work starts.
func buildOptions(size, crop string, grayscale bool, replaceAlpha string,
	upscale, autocrop, detail, sharpen bool,
	mark, markPos, markScale string, markOpacity float64, markTile bool) (*processor.Options, error) {

	var target processor.TargetSize
	if size != "" {
		var err error
		target, err = processor.ParseSize(size)
		if err != nil {
			return nil, err
		}
	}
	cropMode, err := processor.ParseCropMode(crop)
	if err != nil {
		return nil, err
	}
	background, err := processor.ParseColor(replaceAlpha)
	if err != nil {
		return nil, err
	}

	opts := &processor.Options{
		Size:         target,
		Crop:         cropMode,
		Upscale:      upscale,
		Grayscale:    grayscale,
		ReplaceAlpha: background,
		Autocrop:     autocrop,
		Detail:       detail,
		Sharpen:      sharpen,
	}

	if mark != "" {
		pos, err := watermark.ParsePosition(markPos)
		if err != nil {
			return nil, err
		}
		scale, err := watermark.ParseScale(markScale)
		if err != nil {
			return nil, err
		}
		opts.Watermark = &watermark.Options{
			Path:     mark,
			Position: pos,
			Opacity:  markOpacity,
			Scale:    scale,
			Tile:     markTile,
		}
	}

	return opts, nil
}
