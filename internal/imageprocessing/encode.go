package imageprocessing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/halftonelab/halftone/internal/dither"
)

// EncodeFile writes a dithered buffer to path, picking the container from the
// file extension. PNG output uses the packed 1-bit encoder; BMP and TIFF are
// written as 8-bit grayscale.
func EncodeFile(path string, m *dither.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		data, err := EncodeMonoPNG(m)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	case ".bmp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return bmp.Encode(f, FromGray(m))
	case ".tif", ".tiff":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return tiff.Encode(f, FromGray(m), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %q (use .png, .bmp, .tif or .tiff)", filepath.Ext(path))
	}
}
