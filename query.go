package imgbridge

import (
	"strings"

	"go.uber.org/zap"

	"github.com/imgbridge/imgbridge/internal/codec"
	"github.com/imgbridge/imgbridge/internal/ocr"
)

// ColorModel tags the pixel layout of an image: 0=gray, 1=gray+alpha,
// 2=rgb, 3=rgba. The numeric values are boundary-stable.
type ColorModel uint8

const (
	ColorGray      ColorModel = 0
	ColorGrayAlpha ColorModel = 1
	ColorRGB       ColorModel = 2
	ColorRGBA      ColorModel = 3
)

// Metadata describes an image. It is copied by value and requires no
// release.
type Metadata struct {
	Width  uint32
	Height uint32
	Color  ColorModel
}

// GetMetadata copies the image's dimensions and color model into a
// by-value record. On failure the record is zeroed.
func GetMetadata(h Handle) (Metadata, Code) {
	if h == 0 {
		return Metadata{}, InvalidPointer
	}
	img, ok := images.Get(h)
	if !ok {
		return Metadata{}, InvalidPointer
	}

	m := codec.Describe(img)
	return Metadata{
		Width:  m.Width,
		Height: m.Height,
		Color:  ColorModel(m.Color),
	}, Success
}

// DominantColors analyzes the image and transfers a comma-separated list
// of up to count hex colors ("#rrggbb", most frequent first) to the
// caller as an owned string. The caller releases it with FreeString.
func DominantColors(h Handle, count uint32) (token Handle, code Code) {
	if h == 0 {
		return 0, InvalidPointer
	}
	if count == 0 {
		return 0, InvalidDimensions
	}
	img, ok := images.Get(h)
	if !ok {
		return 0, InvalidPointer
	}

	colors := codec.DominantColors(img, int(count))
	return strs.Put(strings.Join(colors, ",")), Success
}

// ExtractText runs OCR over the image and transfers the recognized text
// to the caller as an owned string, released with FreeString. Reports
// UnsupportedFormat when the library was built without Tesseract support.
func ExtractText(h Handle) (token Handle, code Code) {
	if h == 0 {
		return 0, InvalidPointer
	}
	img, ok := images.Get(h)
	if !ok {
		return 0, InvalidPointer
	}

	text, err := ocr.ExtractText(img)
	if err != nil {
		Logger().Debug("text extraction failed", zap.Error(err))
		return 0, codeFor(err)
	}
	return strs.Put(text), Success
}
