package dither

import "fmt"

// Entry is one weighted neighbor of a diffusion kernel: the pixel at
// (x+DX, y+DY) receives err*Num/Den of the quantization error, computed with
// truncating integer division. Every catalog entry points strictly ahead of
// the traversal: DY > 0, or DY == 0 and DX > 0.
type Entry struct {
	DX, DY   int
	Num, Den int
}

// Kernel is an ordered, immutable list of diffusion targets. Randomized marks
// the pseudo-kernel that swaps in the randomized quantizer instead of
// diffusing error.
type Kernel struct {
	Name       string
	Entries    []Entry
	Randomized bool
}

// The catalog is a closed set: kernels outside it are not constructible at
// runtime. New kernels are pure data additions here.
var kernels = map[string]Kernel{
	"naive-1d": {
		Name: "naive-1d",
		Entries: []Entry{
			{1, 0, 1, 1},
		},
	},
	"naive-2d": {
		Name: "naive-2d",
		Entries: []Entry{
			{1, 0, 1, 2},
			{0, 1, 1, 2},
		},
	},
	"floyd-steinberg": {
		Name: "floyd-steinberg",
		Entries: []Entry{
			{1, 0, 7, 16},
			{-1, 1, 3, 16},
			{0, 1, 5, 16},
			{1, 1, 1, 16},
		},
	},
	"false-floyd-steinberg": {
		Name: "false-floyd-steinberg",
		Entries: []Entry{
			{1, 0, 3, 8},
			{0, 1, 3, 8},
			{1, 1, 2, 8},
		},
	},
	"jarvis-judice-ninke": {
		Name: "jarvis-judice-ninke",
		Entries: []Entry{
			{1, 0, 7, 48},
			{2, 0, 5, 48},
			{-2, 1, 3, 48},
			{-1, 1, 5, 48},
			{0, 1, 7, 48},
			{1, 1, 5, 48},
			{2, 1, 3, 48},
			{-2, 2, 1, 48},
			{-1, 2, 3, 48},
			{0, 2, 5, 48},
			{1, 2, 3, 48},
			{2, 2, 1, 48},
		},
	},
	"stucki": {
		Name: "stucki",
		Entries: []Entry{
			{1, 0, 8, 42},
			{2, 0, 4, 42},
			{-2, 1, 2, 42},
			{-1, 1, 4, 42},
			{0, 1, 8, 42},
			{1, 1, 4, 42},
			{2, 1, 2, 42},
			{-2, 2, 1, 42},
			{-1, 2, 2, 42},
			{0, 2, 4, 42},
			{1, 2, 2, 42},
			{2, 2, 1, 42},
		},
	},
	// Atkinson only redistributes 6/8 of the error. That is the published
	// behavior, not a conservation bug.
	"atkinson": {
		Name: "atkinson",
		Entries: []Entry{
			{1, 0, 1, 8},
			{2, 0, 1, 8},
			{-1, 1, 1, 8},
			{0, 1, 1, 8},
			{1, 1, 1, 8},
			{0, 2, 1, 8},
		},
	},
	"burkes": {
		Name: "burkes",
		Entries: []Entry{
			{1, 0, 8, 32},
			{2, 0, 4, 32},
			{-2, 1, 2, 32},
			{-1, 1, 4, 32},
			{0, 1, 8, 32},
			{1, 1, 4, 32},
			{2, 1, 2, 32},
		},
	},
	"sierra": {
		Name: "sierra",
		Entries: []Entry{
			{1, 0, 5, 32},
			{2, 0, 3, 32},
			{-2, 1, 2, 32},
			{-1, 1, 4, 32},
			{0, 1, 5, 32},
			{1, 1, 4, 32},
			{2, 1, 2, 32},
			{-1, 2, 2, 32},
			{0, 2, 3, 32},
			{1, 2, 2, 32},
		},
	},
	"two-row-sierra": {
		Name: "two-row-sierra",
		Entries: []Entry{
			{1, 0, 4, 16},
			{2, 0, 3, 16},
			{-2, 1, 1, 16},
			{-1, 1, 2, 16},
			{0, 1, 3, 16},
			{1, 1, 2, 16},
			{2, 1, 1, 16},
		},
	},
	"sierra-lite": {
		Name: "sierra-lite",
		Entries: []Entry{
			{1, 0, 2, 4},
			{-1, 1, 1, 4},
			{0, 1, 1, 4},
		},
	},
	// Pure thresholding: the error is computed and discarded.
	"quantization": {
		Name: "quantization",
	},
	// Random dithering: no diffusion at all, randomized quantizer instead.
	"random": {
		Name:       "random",
		Randomized: true,
	},
}

// kernelNames fixes the order reported by Names.
var kernelNames = []string{
	"naive-1d",
	"naive-2d",
	"floyd-steinberg",
	"false-floyd-steinberg",
	"jarvis-judice-ninke",
	"stucki",
	"atkinson",
	"burkes",
	"sierra",
	"two-row-sierra",
	"sierra-lite",
	"quantization",
	"random",
}

// ByName looks up a kernel in the catalog.
func ByName(name string) (Kernel, error) {
	k, ok := kernels[name]
	if !ok {
		return Kernel{}, fmt.Errorf("unknown kernel %q", name)
	}
	return k, nil
}

// Names returns the catalog's kernel names in a stable order.
func Names() []string {
	names := make([]string, len(kernelNames))
	copy(names, kernelNames)
	return names
}
