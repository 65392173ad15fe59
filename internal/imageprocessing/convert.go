package imageprocessing

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/halftonelab/halftone/internal/dither"
)

// Decode reads any registered image format into memory and returns it along
// with the detected format name. Format detection, decoding and re-encoding
// all live here; the dithering core only ever sees the grayscale buffer.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// ToGray converts an image to the engine's single-channel buffer using the
// luminance formula Y = 0.299*R + 0.587*G + 0.114*B.
func ToGray(img image.Image) *dither.Image {
	if img == nil {
		return nil
	}

	bounds := img.Bounds()
	out := dither.NewImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			out.Set(x-bounds.Min.X, y-bounds.Min.Y, g.Y)
		}
	}

	return out
}

// FromGray wraps the engine's buffer in a standard library image for the
// encoders that want one. The pixel storage is shared, not copied.
func FromGray(m *dither.Image) *image.Gray {
	if m == nil {
		return nil
	}
	return &image.Gray{
		Pix:    m.Pix,
		Stride: m.Width,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}
