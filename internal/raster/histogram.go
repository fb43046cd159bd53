package raster

import (
	"image"
	"math"
)

// Histogram computes a 256-bin pixel-intensity histogram of an image.
// Color pixels are reduced to luminance using ITU-R BT.601 weights
// (0.299*R + 0.587*G + 0.114*B), matching the grayscale conversion used
// elsewhere in the pipeline. Alpha is ignored.
func Histogram(img image.Image) [256]int {
	var hist [256]int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			// 16-bit components; weights sum to 1000.
			luma := (299*(r>>8) + 587*(g>>8) + 114*(bb>>8)) / 1000
			hist[luma]++
		}
	}
	return hist
}

// Entropy estimates the information content of an image region as the
// Shannon entropy of its normalized intensity histogram:
//
//	H = -sum(p * log2(p)) over bins with nonzero probability
//
// A uniform region has entropy 0; the maximum for an 8-bit histogram is 8.
// The pipeline uses this as a proxy for visual importance when deciding
// which edge of an image to trim first.
func Entropy(img image.Image) float64 {
	hist := Histogram(img)
	total := 0
	for _, n := range hist {
		total += n
	}
	if total == 0 {
		return 0
	}
	var entropy float64
	for _, n := range hist {
		if n == 0 {
			continue
		}
		p := float64(n) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}
