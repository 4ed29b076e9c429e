// Package codec wraps the third-party image libraries behind a small set
// of pure functions: decode, encode, save, format sniffing, and one
// function per transform. All pixel-level work happens here; the boundary
// layer above only moves handles, buffers, and status codes around.
package codec

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	xwebp "golang.org/x/image/webp"
)

var (
	errUnknownSignature = errors.New("no known format signature")
	errNoCodec          = errors.New("no codec for format")
)

// Open decodes an image from a file path. The format is detected from the
// stream contents, not the extension.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrap(KindIO, "open", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, classifyDecode("open", err)
	}
	return img, nil
}

// Decode decodes an image from memory, detecting the format from the data.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, classifyDecode("decode", err)
	}
	return img, nil
}

// DecodeWithFormat decodes an image from memory using the given format's
// decoder directly, bypassing detection.
func DecodeWithFormat(data []byte, format Format) (image.Image, error) {
	r := bytes.NewReader(data)

	var (
		img image.Image
		err error
	)
	switch format {
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatGIF:
		img, err = gif.Decode(r)
	case FormatWebP:
		img, err = xwebp.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatTIFF:
		img, err = tiff.Decode(r)
	default:
		return nil, wrap(KindUnsupported, "decode "+format.String(), errNoCodec)
	}
	if err != nil {
		return nil, wrap(KindDecode, "decode "+format.String(), err)
	}
	return img, nil
}

// Encode serializes an image to the given format in memory.
func Encode(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF:
		if err := imaging.Encode(&buf, img, imagingFormat(format)); err != nil {
			return nil, wrap(KindEncode, "encode "+format.String(), err)
		}
	case FormatWebP:
		return encodeWebP(img)
	default:
		return nil, wrap(KindUnsupported, "encode "+format.String(), errNoCodec)
	}

	return buf.Bytes(), nil
}

func imagingFormat(format Format) imaging.Format {
	switch format {
	case FormatJPEG:
		return imaging.JPEG
	case FormatGIF:
		return imaging.GIF
	case FormatBMP:
		return imaging.BMP
	case FormatTIFF:
		return imaging.TIFF
	default:
		return imaging.PNG
	}
}

// Save writes an image to a file, choosing the format from the path
// extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		switch {
		case errors.Is(err, imaging.ErrUnsupportedFormat):
			return wrap(KindUnsupported, "save", err)
		case isFileError(err):
			return wrap(KindIO, "save", err)
		default:
			return wrap(KindEncode, "save", err)
		}
	}
	return nil
}

func isFileError(err error) bool {
	var pathErr *os.PathError
	return errors.As(err, &pathErr)
}

// classifyDecode separates "no decoder recognized this data" from "a
// decoder recognized it and then choked on it".
func classifyDecode(op string, err error) error {
	if errors.Is(err, image.ErrFormat) {
		return wrap(KindUnsupported, op, err)
	}
	return wrap(KindDecode, op, err)
}

// ColorModel tags the pixel layout of a decoded image. The values are
// boundary-stable: 0=gray, 1=gray+alpha, 2=rgb, 3=rgba.
type ColorModel uint8

const (
	ColorGray ColorModel = iota
	ColorGrayAlpha
	ColorRGB
	ColorRGBA
)

func (c ColorModel) String() string {
	switch c {
	case ColorGray:
		return "gray"
	case ColorGrayAlpha:
		return "gray+alpha"
	case ColorRGB:
		return "rgb"
	default:
		return "rgba"
	}
}

// Metadata is the fixed-size description of an in-memory image. It is
// copied by value and has no lifetime of its own.
type Metadata struct {
	Width  uint32
	Height uint32
	Color  ColorModel
}

// Describe reports dimensions and color model for an image. The model is
// derived from the concrete pixel type; anything without a tighter match
// reports RGBA.
func Describe(img image.Image) Metadata {
	b := img.Bounds()

	var model ColorModel
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		model = ColorGray
	case *image.YCbCr, *image.CMYK:
		model = ColorRGB
	default:
		model = ColorRGBA
	}

	return Metadata{
		Width:  uint32(b.Dx()),
		Height: uint32(b.Dy()),
		Color:  model,
	}
}
