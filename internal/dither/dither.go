// Package dither implements generic error-diffusion dithering of 8-bit
// grayscale buffers down to pure black and white. A single traversal drives a
// pluggable quantizer and spreads each pixel's quantization error to
// not-yet-visited neighbors according to a named diffusion kernel.
package dither

import "fmt"

// Dither quantizes every pixel of img in place and diffuses each pixel's
// quantization error to the neighbors named by the kernel. It returns the
// number of pixels processed.
//
// Pixels are visited top-to-bottom, left-to-right. Because every kernel entry
// points strictly ahead in that order, a pixel's intensity at quantization
// time already includes all error diffused into it, and no pixel is ever
// quantized twice. The traversal order is a correctness requirement, not a
// performance choice.
//
// Each diffusion share is err*Num/Den with Go's truncating integer division
// (rounds toward zero, matching the sign of the error); this reproduces the
// banding and rounding bias of the classic integer implementations. Neighbors
// outside the image are skipped silently; there is no wraparound.
func Dither(img *Image, k Kernel, q Quantizer) int {
	processed := 0
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			v, err := q.Quantize(img.At(x, y))
			img.Set(x, y, v)
			processed++

			for _, e := range k.Entries {
				nx, ny := x+e.DX, y+e.DY
				if !img.InBounds(nx, ny) {
					continue
				}
				share := err * e.Num / e.Den
				img.Set(nx, ny, ClampUint8(int(img.At(nx, ny))+share))
			}
		}
	}
	return processed
}

// Apply runs Dither with the named catalog kernel and its matching quantizer:
// the deterministic threshold quantizer for diffusing kernels and
// "quantization", the randomized quantizer for "random". The random source is
// required only for "random" and is consumed once per pixel.
func Apply(img *Image, name string, src Rand) (int, error) {
	k, err := ByName(name)
	if err != nil {
		return 0, err
	}

	var q Quantizer = ThresholdQuantizer{}
	if k.Randomized {
		if src == nil {
			return 0, fmt.Errorf("kernel %q requires a random source", name)
		}
		q = RandomQuantizer{Src: src}
	}
	return Dither(img, k, q), nil
}
