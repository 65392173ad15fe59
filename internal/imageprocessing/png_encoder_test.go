package imageprocessing

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/halftonelab/halftone/internal/dither"
)

func TestEncodeMonoPNGRoundTrip(t *testing.T) {
	// 10 wide forces partial trailing bytes in each packed scanline.
	m := dither.NewImage(10, 3)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if (x+y)%2 == 0 {
				m.Set(x, y, 255)
			}
		}
	}

	data, err := EncodeMonoPNG(m)
	if err != nil {
		t.Fatalf("EncodeMonoPNG: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 3 {
		t.Errorf("decoded dimensions = %dx%d, want 10x3", cfg.Width, cfg.Height)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	back := ToGray(decoded)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if back.At(x, y) != m.At(x, y) {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, back.At(x, y), m.At(x, y))
			}
		}
	}
}

func TestEncodeMonoPNGHeader(t *testing.T) {
	m := dither.NewImage(8, 8)
	data, err := EncodeMonoPNG(m)
	if err != nil {
		t.Fatalf("EncodeMonoPNG: %v", err)
	}

	// IHDR data starts after the 8-byte signature, 4-byte length and 4-byte
	// chunk type; bit depth and color type follow the two dimension words.
	if len(data) < 26 {
		t.Fatalf("output too short: %d bytes", len(data))
	}
	if depth := data[24]; depth != 1 {
		t.Errorf("IHDR bit depth = %d, want 1", depth)
	}
	if colorType := data[25]; colorType != 0 {
		t.Errorf("IHDR color type = %d, want 0 (grayscale)", colorType)
	}
}

func TestEncodeMonoPNGEmpty(t *testing.T) {
	if _, err := EncodeMonoPNG(nil); err == nil {
		t.Error("expected error for nil image")
	}
	if _, err := EncodeMonoPNG(&dither.Image{}); err == nil {
		t.Error("expected error for zero-size image")
	}
}
