package dither

// DefaultThreshold is the canonical split point: intensities >= 128 quantize
// to white.
const DefaultThreshold = 128

// Quantizer reduces one pixel to 0 or 255 and reports the signed quantization
// error old minus new: negative when rounding up to white, positive when rounding
// down to black. The reported error is always in [-255, 255].
type Quantizer interface {
	Quantize(old uint8) (v uint8, err int)
}

// Rand is the random source consumed by RandomQuantizer, one draw per pixel.
// *math/rand.Rand satisfies it. The source is seeded by the caller, never by
// this package.
type Rand interface {
	Intn(n int) int
}

// ThresholdQuantizer is the deterministic quantizer. A zero Threshold means
// DefaultThreshold.
type ThresholdQuantizer struct {
	Threshold uint8
}

func (q ThresholdQuantizer) Quantize(old uint8) (uint8, int) {
	t := q.Threshold
	if t == 0 {
		t = DefaultThreshold
	}
	if old >= t {
		return 255, int(old) - 255
	}
	return 0, int(old)
}

// RandomQuantizer draws a uniform integer in [0, 255) per pixel; a draw that
// exceeds the pixel's intensity yields black, otherwise white. The comparison
// direction is inverted relative to the threshold path on purpose: brighter
// pixels win more draws and so are more likely to come out white.
type RandomQuantizer struct {
	Src Rand
}

func (q RandomQuantizer) Quantize(old uint8) (uint8, int) {
	if q.Src.Intn(255) > int(old) {
		return 0, int(old)
	}
	return 255, int(old) - 255
}
