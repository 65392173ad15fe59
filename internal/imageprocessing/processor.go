package imageprocessing

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/halftonelab/halftone/internal/dither"
)

// FitMode selects how a target geometry is satisfied.
type FitMode string

const (
	// FitContain letterboxes onto a black canvas of the exact target size.
	FitContain FitMode = "fit"
	// FitCover scales to cover the target and crops the overflow.
	FitCover FitMode = "fill"
)

// Options customizes the preparation pipeline that runs before dithering.
// Zero values mean "skip that stage".
type Options struct {
	// Width and Height select a target geometry; both must be set to resize.
	Width  int
	Height int
	Mode   FitMode

	// BlurSigma applies a Gaussian blur before grayscale conversion.
	// Softening high-frequency detail first gives the error diffusion less
	// noise to chase.
	BlurSigma float32
}

// Prepare applies the optional resize and blur stages and converts the result
// to the engine's grayscale buffer. The input image is never mutated.
func Prepare(img image.Image, opts Options) *dither.Image {
	if img == nil {
		return nil
	}

	if opts.Width > 0 && opts.Height > 0 {
		if opts.Mode == FitCover {
			img = ResizeToFill(img, opts.Width, opts.Height)
		} else {
			img = ResizeToFit(img, opts.Width, opts.Height)
		}
	}

	if opts.BlurSigma > 0 {
		g := gift.New(gift.GaussianBlur(opts.BlurSigma))
		blurred := image.NewRGBA(g.Bounds(img.Bounds()))
		g.Draw(blurred, img)
		img = blurred
	}

	return ToGray(img)
}
