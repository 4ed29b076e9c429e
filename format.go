package imgbridge

import "github.com/imgbridge/imgbridge/internal/codec"

// Format is a boundary-stable tag for an image container format. The tag
// set is closed by design: adding a format means extending this
// enumeration and both mapping directions below, in exchange for a stable
// binary interface.
type Format uint32

const (
	Png  Format = 0
	Jpeg Format = 1
	Gif  Format = 2
	WebP Format = 3
	Bmp  Format = 4
	Ico  Format = 5
	Tiff Format = 6
)

func (f Format) String() string {
	if !f.valid() {
		return "invalid"
	}
	return f.internal().String()
}

func (f Format) valid() bool {
	return f <= Tiff
}

// internal maps a boundary tag to the codec layer's format. Total over
// the defined tags; callers validate the tag first.
func (f Format) internal() codec.Format {
	switch f {
	case Png:
		return codec.FormatPNG
	case Jpeg:
		return codec.FormatJPEG
	case Gif:
		return codec.FormatGIF
	case WebP:
		return codec.FormatWebP
	case Bmp:
		return codec.FormatBMP
	case Ico:
		return codec.FormatICO
	case Tiff:
		return codec.FormatTIFF
	default:
		return codec.FormatUnknown
	}
}

// formatTag is the partial inverse of Format.internal: codec formats the
// boundary does not expose report false.
func formatTag(f codec.Format) (Format, bool) {
	switch f {
	case codec.FormatPNG:
		return Png, true
	case codec.FormatJPEG:
		return Jpeg, true
	case codec.FormatGIF:
		return Gif, true
	case codec.FormatWebP:
		return WebP, true
	case codec.FormatBMP:
		return Bmp, true
	case codec.FormatICO:
		return Ico, true
	case codec.FormatTIFF:
		return Tiff, true
	default:
		return 0, false
	}
}

// Filter is a boundary-stable tag for a resampling kernel.
type Filter uint32

const (
	Nearest    Filter = 0
	Triangle   Filter = 1
	CatmullRom Filter = 2
	Gaussian   Filter = 3
	Lanczos3   Filter = 4
)

func (f Filter) valid() bool {
	return f <= Lanczos3
}

func (f Filter) internal() codec.Filter {
	switch f {
	case Nearest:
		return codec.FilterNearest
	case Triangle:
		return codec.FilterLinear
	case CatmullRom:
		return codec.FilterCatmullRom
	case Gaussian:
		return codec.FilterGaussian
	default:
		return codec.FilterLanczos
	}
}
