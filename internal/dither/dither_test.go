package dither

import (
	"bytes"
	"testing"
)

// Golden end-to-end scenario: naive-1d pushes each pixel's full error one
// pixel to the right. Hand-computed trace for the row [10 245 10 245]:
// pixel0 10 -> 0 (err 10), pixel1 sees 255 -> 255 (err 0), pixel2 10 -> 0
// (err 10), pixel3 sees 255 -> 255. All four pixels are processed, including
// the final column.
func TestNaive1DGoldenRow(t *testing.T) {
	img := &Image{Width: 4, Height: 1, Pix: []uint8{10, 245, 10, 245}}

	n, err := Apply(img, "naive-1d", nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 4 {
		t.Errorf("processed %d pixels, want 4", n)
	}
	want := []uint8{0, 255, 0, 255}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("row = %v, want %v", img.Pix, want)
	}
}

func TestDitherExtremesAreFixedPoints(t *testing.T) {
	for _, name := range Names() {
		for _, fill := range []uint8{0, 255} {
			img := NewImage(6, 4)
			for i := range img.Pix {
				img.Pix[i] = fill
			}

			// A fixed draw below 254 keeps the random quantizer deterministic
			// at both extremes: 255 never loses a draw, 0 loses every
			// non-zero draw.
			if _, err := Apply(img, name, fixedRand{draw: 100}); err != nil {
				t.Fatalf("%s: Apply: %v", name, err)
			}
			for i, v := range img.Pix {
				if v != fill {
					t.Errorf("%s: uniform %d input changed at %d: %d", name, fill, i, v)
					break
				}
			}
		}
	}
}

// Every pixel of the image is quantized, including the final row and column.
// An input value that no diffusion can produce (10) would survive anywhere
// the traversal skipped.
func TestDitherCoversLastRowAndColumn(t *testing.T) {
	img := NewImage(5, 4)
	for i := range img.Pix {
		img.Pix[i] = 10
	}

	n, err := Apply(img, "floyd-steinberg", nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 20 {
		t.Errorf("processed %d pixels, want 20", n)
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if v := img.At(x, y); v != 0 && v != 255 {
				t.Errorf("pixel (%d,%d) = %d, not quantized", x, y, v)
			}
		}
	}
}

func TestDitherOutputIsBinary(t *testing.T) {
	for _, name := range Names() {
		if name == "random" {
			continue
		}
		img := NewImage(8, 8)
		for i := range img.Pix {
			img.Pix[i] = uint8(i * 4)
		}
		if _, err := Apply(img, name, nil); err != nil {
			t.Fatalf("%s: Apply: %v", name, err)
		}
		for i, v := range img.Pix {
			if v != 0 && v != 255 {
				t.Errorf("%s: pixel %d = %d, want 0 or 255", name, i, v)
			}
		}
	}
}

func TestQuantizationIdempotentOnBinary(t *testing.T) {
	img := &Image{Width: 4, Height: 2, Pix: []uint8{0, 255, 255, 0, 255, 0, 0, 255}}
	want := append([]uint8(nil), img.Pix...)

	if _, err := Apply(img, "quantization", nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("binary image changed: %v, want %v", img.Pix, want)
	}
}

// Wide kernels reach up to two columns left and right and two rows down; on a
// tiny image every entry lands out of bounds at some point and must be
// skipped silently, never wrapped to the opposite edge.
func TestDitherEdgesNeverWrap(t *testing.T) {
	for _, name := range []string{"jarvis-judice-ninke", "stucki", "sierra", "burkes"} {
		img := &Image{Width: 2, Height: 2, Pix: []uint8{40, 200, 160, 90}}
		n, err := Apply(img, name, nil)
		if err != nil {
			t.Fatalf("%s: Apply: %v", name, err)
		}
		if n != 4 {
			t.Errorf("%s: processed %d pixels, want 4", name, n)
		}
		for i, v := range img.Pix {
			if v != 0 && v != 255 {
				t.Errorf("%s: pixel %d = %d, want 0 or 255", name, i, v)
			}
		}
	}
}

func TestDitherSinglePixel(t *testing.T) {
	img := &Image{Width: 1, Height: 1, Pix: []uint8{128}}
	n, err := Apply(img, "jarvis-judice-ninke", nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 1 || img.Pix[0] != 255 {
		t.Errorf("got n=%d pix=%d, want n=1 pix=255", n, img.Pix[0])
	}
}

// Diffusion shares truncate toward zero. Quantizing 128 leaves err = -127;
// the Floyd-Steinberg right-neighbor share is -127*7/16 = -55 (truncated),
// not -56 (floored). 183 - 55 = 128 stays at the threshold and turns white;
// a floored share would have produced 127 and black.
func TestDiffusionTruncatesTowardZero(t *testing.T) {
	img := &Image{Width: 2, Height: 1, Pix: []uint8{128, 183}}
	if _, err := Apply(img, "floyd-steinberg", nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []uint8{255, 255}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("row = %v, want %v", img.Pix, want)
	}
}

func TestApplyErrors(t *testing.T) {
	img := NewImage(2, 2)
	if _, err := Apply(img, "bayer", nil); err == nil {
		t.Error("expected error for unknown kernel")
	}
	if _, err := Apply(img, "random", nil); err == nil {
		t.Error("expected error for random kernel without a source")
	}
}
