package dither

// Image is a mutable single-channel 8-bit intensity buffer. Pixels are stored
// row-major with the origin at the top-left corner. The dithering pass mutates
// the buffer in place and allocates no additional image-sized state, so the
// caller must not read or write the buffer concurrently during a pass.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates a zeroed (all-black) buffer of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the intensity at (x, y). Coordinates must be in bounds.
func (m *Image) At(x, y int) uint8 {
	return m.Pix[y*m.Width+x]
}

// Set writes the intensity at (x, y). Coordinates must be in bounds.
func (m *Image) Set(x, y int, v uint8) {
	m.Pix[y*m.Width+x] = v
}

// InBounds reports whether (x, y) names a valid pixel.
func (m *Image) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// ClampUint8 coerces a signed error accumulator into the legal 8-bit
// intensity range: values above 255 saturate to 255, values below 0 saturate
// to 0, everything else passes through unchanged.
func ClampUint8(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
