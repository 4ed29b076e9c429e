package codec

import (
	"bytes"

	"github.com/disintegration/imaging"
)

// Format identifies an image container format within the codec layer.
// FormatUnknown is the zero value; the named constants cover the set the
// sniffer can recognize, which is a superset of what the codecs can
// actually decode or encode.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatWebP
	FormatBMP
	FormatICO
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatWebP:
		return "webp"
	case FormatBMP:
		return "bmp"
	case FormatICO:
		return "ico"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// Filter identifies a resampling kernel for the resize operations.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
	FilterCatmullRom
	FilterGaussian
	FilterLanczos
)

func (f Filter) resample() imaging.ResampleFilter {
	switch f {
	case FilterNearest:
		return imaging.NearestNeighbor
	case FilterLinear:
		return imaging.Linear
	case FilterCatmullRom:
		return imaging.CatmullRom
	case FilterGaussian:
		return imaging.Gaussian
	case FilterLanczos:
		return imaging.Lanczos
	default:
		return imaging.Lanczos
	}
}

// Magic signatures for format sniffing. JPEG and the RIFF container are
// matched on their stable leading bytes only.
var sniffTable = []struct {
	format Format
	offset int
	magic  []byte
}{
	{FormatPNG, 0, []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}},
	{FormatJPEG, 0, []byte{0xff, 0xd8, 0xff}},
	{FormatGIF, 0, []byte("GIF87a")},
	{FormatGIF, 0, []byte("GIF89a")},
	{FormatWebP, 8, []byte("WEBP")},
	{FormatBMP, 0, []byte("BM")},
	{FormatICO, 0, []byte{0x00, 0x00, 0x01, 0x00}},
	{FormatTIFF, 0, []byte("II*\x00")},
	{FormatTIFF, 0, []byte("MM\x00*")},
}

// Sniff detects the container format from the leading bytes of encoded
// image data. It never decodes; detection is purely signature-based, the
// same way the registered stdlib decoders match their magic.
func Sniff(data []byte) (Format, error) {
	for _, s := range sniffTable {
		end := s.offset + len(s.magic)
		if len(data) >= end && bytes.Equal(data[s.offset:end], s.magic) {
			if s.format == FormatWebP && !bytes.HasPrefix(data, []byte("RIFF")) {
				continue
			}
			return s.format, nil
		}
	}
	return FormatUnknown, wrap(KindUnsupported, "sniff", errUnknownSignature)
}
