package imageprocessing

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/halftonelab/halftone/internal/dither"
)

func TestToGrayLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})
	img.Set(1, 0, color.RGBA{0, 0, 0, 255})
	img.Set(2, 0, color.RGBA{255, 0, 0, 255})
	img.Set(3, 0, color.Gray{Y: 90})

	m := ToGray(img)
	if m.Width != 4 || m.Height != 1 {
		t.Fatalf("dimensions = %dx%d, want 4x1", m.Width, m.Height)
	}

	tests := []struct {
		x    int
		want uint8
	}{
		{0, 255},
		{1, 0},
		{2, 76}, // 0.299 * 255
		{3, 90},
	}
	for _, tt := range tests {
		if got := m.At(tt.x, 0); got != tt.want {
			t.Errorf("pixel %d = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestToGrayNonZeroOrigin(t *testing.T) {
	img := image.NewGray(image.Rect(2, 3, 5, 5))
	img.SetGray(2, 3, color.Gray{Y: 200})
	img.SetGray(4, 4, color.Gray{Y: 50})

	m := ToGray(img)
	if m.Width != 3 || m.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", m.Width, m.Height)
	}
	if m.At(0, 0) != 200 {
		t.Errorf("origin pixel = %d, want 200", m.At(0, 0))
	}
	if m.At(2, 1) != 50 {
		t.Errorf("far pixel = %d, want 50", m.At(2, 1))
	}
}

func TestFromGraySharesStorage(t *testing.T) {
	m := dither.NewImage(2, 2)
	m.Set(1, 1, 255)

	g := FromGray(m)
	if g.GrayAt(1, 1).Y != 255 {
		t.Errorf("GrayAt(1,1) = %d, want 255", g.GrayAt(1, 1).Y)
	}
	g.SetGray(0, 0, color.Gray{Y: 7})
	if m.At(0, 0) != 7 {
		t.Error("FromGray should share pixel storage, not copy it")
	}
}

func TestDecode(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 3))
	src.SetGray(1, 1, color.Gray{Y: 180})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	img, format, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if ToGray(img).At(1, 1) != 180 {
		t.Errorf("decoded pixel mismatch")
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error for undecodable input")
	}
}
