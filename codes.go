package imgbridge

import (
	"errors"

	"github.com/imgbridge/imgbridge/internal/codec"
	"github.com/imgbridge/imgbridge/internal/ocr"
)

// Code is a boundary-stable status code. The set is closed; bindings can
// rely on these numeric values never changing.
type Code uint32

const (
	Success           Code = 0
	InvalidPath       Code = 1
	UnsupportedFormat Code = 2
	DecodingError     Code = 3
	EncodingError     Code = 4
	IoError           Code = 5
	InvalidDimensions Code = 6
	InvalidPointer    Code = 7
	Unknown           Code = 99
)

func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case InvalidPath:
		return "invalid path"
	case UnsupportedFormat:
		return "unsupported format"
	case DecodingError:
		return "decoding error"
	case EncodingError:
		return "encoding error"
	case IoError:
		return "io error"
	case InvalidDimensions:
		return "invalid dimensions"
	case InvalidPointer:
		return "invalid pointer"
	default:
		return "unknown"
	}
}

// codeFor classifies an internal failure into exactly one boundary code.
// The match is ordered and total: anything the cases below don't claim
// falls through to Unknown rather than being dropped.
func codeFor(err error) Code {
	if err == nil {
		return Success
	}
	if errors.Is(err, ocr.ErrUnavailable) {
		return UnsupportedFormat
	}

	kind, ok := codec.KindOf(err)
	if !ok {
		return Unknown
	}
	switch kind {
	case codec.KindDecode:
		return DecodingError
	case codec.KindEncode:
		return EncodingError
	case codec.KindIO:
		return IoError
	case codec.KindLimit:
		return InvalidDimensions
	case codec.KindUnsupported:
		return UnsupportedFormat
	default:
		return Unknown
	}
}
