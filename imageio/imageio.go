// Package imageio converts between the float RGBA pixel representation
// used by rast and common image file formats.
//
// Decoded images are classified by their source channel count (gray,
// gray+alpha, RGB, RGBA) and normalized immediately to the canonical
// 4-float RGBA layout, so the rasterization core never branches on source
// formats. Encoding quantizes each channel with round(clamp(f,0,1)*255).
//
// Supported formats: PNG, JPEG, GIF (decode only), BMP, and TIFF.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/rast"

	// Register decoders for formats without an explicit encode path here.
	_ "image/gif"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported image format")

	// ErrNilPixmap is returned when a nil pixmap is passed to Save.
	ErrNilPixmap = errors.New("imageio: nil pixmap")
)

// SourceFormat tags the channel layout of a decoded image before
// normalization.
type SourceFormat int

const (
	// SourceGray is a single-channel grayscale image.
	SourceGray SourceFormat = iota
	// SourceGrayAlpha is a grayscale image with an alpha channel.
	SourceGrayAlpha
	// SourceRGB is a three-channel color image without alpha.
	SourceRGB
	// SourceRGBA is a four-channel color image with alpha.
	SourceRGBA
)

// Channels returns the source channel count for the format.
func (f SourceFormat) Channels() int {
	switch f {
	case SourceGray:
		return 1
	case SourceGrayAlpha:
		return 2
	case SourceRGB:
		return 3
	default:
		return 4
	}
}

// String returns a human-readable name for the format.
func (f SourceFormat) String() string {
	switch f {
	case SourceGray:
		return "Gray"
	case SourceGrayAlpha:
		return "GrayAlpha"
	case SourceRGB:
		return "RGB"
	case SourceRGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// Classify reports the source channel layout of a decoded image.
// Unknown image types classify as SourceRGBA; normalization handles them
// through the generic color-model path.
func Classify(img image.Image) SourceFormat {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return SourceGray
	case *image.YCbCr, *image.CMYK:
		return SourceRGB
	case *image.NYCbCrA:
		return SourceRGBA
	default:
		return SourceRGBA
	}
}

// Normalize converts any decoded image to the canonical float RGBA pixmap.
// Three-channel sources get alpha 1; grayscale sources replicate the gray
// value into R, G, and B.
func Normalize(img image.Image) *rast.Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := rast.NewPixmap(width, height)

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < height; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < width; x++ {
				g := float32(row[x]) / 255
				pm.SetPixel(x, y, rast.RGBA{R: g, G: g, B: g, A: 1})
			}
		}
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < width; x++ {
				i := x * 4
				pm.SetPixel(x, y, rast.RGBA{
					R: float32(row[i+0]) / 255,
					G: float32(row[i+1]) / 255,
					B: float32(row[i+2]) / 255,
					A: float32(row[i+3]) / 255,
				})
			}
		}
	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
				pm.SetPixel(x, y, rast.FromColor(c))
			}
		}
	}

	return pm
}

// Decode decodes an image from the given reader, auto-detecting the
// format, and normalizes it to float RGBA.
func Decode(r io.Reader) (*rast.Pixmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	rast.Logger().Debug("imageio: decoded image",
		"format", format, "channels", Classify(img).Channels())

	return Normalize(img), nil
}

// Load loads an image from the given file path, auto-detecting the format.
func Load(path string) (*rast.Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Save writes a pixmap to a file, choosing the encoder from the file
// extension. Supported extensions: .png, .jpg, .jpeg, .bmp, .tif, .tiff.
func Save(path string, pm *rast.Pixmap) error {
	if pm == nil {
		return ErrNilPixmap
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Encode(f, pm, strings.ToLower(filepath.Ext(path)))
}

// Encode writes a pixmap to w in the format named by ext (including the
// leading dot). Returns ErrUnsupportedFormat for unknown extensions.
func Encode(w io.Writer, pm *rast.Pixmap, ext string) error {
	if pm == nil {
		return ErrNilPixmap
	}

	img := pm.ToImage()

	switch ext {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
