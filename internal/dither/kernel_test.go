package dither

import "testing"

func TestByNameCoversCatalog(t *testing.T) {
	for _, name := range Names() {
		k, err := ByName(name)
		if err != nil {
			t.Errorf("ByName(%q) returned error: %v", name, err)
			continue
		}
		if k.Name != name {
			t.Errorf("ByName(%q) returned kernel named %q", name, k.Name)
		}
	}
	if len(Names()) != 13 {
		t.Errorf("expected 13 catalog entries, got %d", len(Names()))
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("ostromoukhov"); err == nil {
		t.Error("expected error for kernel outside the catalog")
	}
}

// Every diffusion target must lie strictly ahead of the current pixel in
// traversal order, or error would be pushed into already-quantized pixels.
func TestKernelEntriesPointAhead(t *testing.T) {
	for _, name := range Names() {
		k, _ := ByName(name)
		for i, e := range k.Entries {
			if e.DY < 0 || (e.DY == 0 && e.DX <= 0) {
				t.Errorf("%s entry %d (%d,%d) targets an already-visited pixel", name, i, e.DX, e.DY)
			}
			if e.Den <= 0 || e.Num <= 0 {
				t.Errorf("%s entry %d has non-positive weight %d/%d", name, i, e.Num, e.Den)
			}
		}
	}
}

// All diffusing kernels share a single denominator per kernel, so exact
// conservation means the numerators sum to the denominator. Atkinson
// deliberately redistributes only 6/8; quantization and random diffuse
// nothing.
func TestKernelWeightSums(t *testing.T) {
	tests := []struct {
		kernel  string
		entries int
		num     int
		den     int
	}{
		{"naive-1d", 1, 1, 1},
		{"naive-2d", 2, 2, 2},
		{"floyd-steinberg", 4, 16, 16},
		{"false-floyd-steinberg", 3, 8, 8},
		{"jarvis-judice-ninke", 12, 48, 48},
		{"stucki", 12, 42, 42},
		{"atkinson", 6, 6, 8},
		{"burkes", 7, 32, 32},
		{"sierra", 10, 32, 32},
		{"two-row-sierra", 7, 16, 16},
		{"sierra-lite", 3, 4, 4},
		{"quantization", 0, 0, 0},
		{"random", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kernel, func(t *testing.T) {
			k, err := ByName(tt.kernel)
			if err != nil {
				t.Fatalf("ByName: %v", err)
			}
			if len(k.Entries) != tt.entries {
				t.Fatalf("entry count = %d, want %d", len(k.Entries), tt.entries)
			}
			sum := 0
			for _, e := range k.Entries {
				if e.Den != tt.den {
					t.Errorf("entry (%d,%d) denominator = %d, want %d", e.DX, e.DY, e.Den, tt.den)
				}
				sum += e.Num
			}
			if sum != tt.num {
				t.Errorf("numerator sum = %d, want %d", sum, tt.num)
			}
		})
	}
}

func TestOnlyRandomIsRandomized(t *testing.T) {
	for _, name := range Names() {
		k, _ := ByName(name)
		if k.Randomized != (name == "random") {
			t.Errorf("%s: Randomized = %v", name, k.Randomized)
		}
	}
}
